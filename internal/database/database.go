package database

import (
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectRetries  int
	SkipMigrate     bool
}

// Models lists every table managed by AutoMigrate, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.Manager{},
		&models.Operator{},
		&models.Session{},
		&models.Call{},
		&models.Mission{},
		&models.MissionProgress{},
		&models.Achievement{},
		&models.OperatorAchievement{},
		&models.Ranking{},
		&models.Reward{},
		&models.Purchase{},
		&models.Goal{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := open(dsn, opts)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// open connects and pings, retrying with exponential backoff while the
// database is still coming up.
func open(dsn string, opts *Options) (*gorm.DB, error) {
	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(opts.LogLevel),
			TranslateError: true,
		})
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 0

	retries := opts.ConnectRetries
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithMaxRetries(b, uint64(retries))

	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		logrus.WithError(err).Warnf("postgres not reachable, retrying in %s", wait)
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
