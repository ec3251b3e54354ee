package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"callcenter-gamification-backend/internal/auth"
	"callcenter-gamification-backend/internal/config"
	"callcenter-gamification-backend/internal/database"
	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ManagerData struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Department string `yaml:"department"`
}

type OperatorData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	ManagerEmail string `yaml:"manager_email,omitempty"`
}

type MissionData struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Cadence      string `yaml:"cadence"`
	Action       string `yaml:"action"`
	TargetValue  int    `yaml:"target_value"`
	RewardPoints int    `yaml:"reward_points"`
}

type AchievementData struct {
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	Icon          string  `yaml:"icon"`
	ConditionType string  `yaml:"condition_type"`
	Threshold     float64 `yaml:"threshold"`
	RewardPoints  int     `yaml:"reward_points"`
}

type RewardData struct {
	Title       string                 `yaml:"title"`
	Description string                 `yaml:"description"`
	Category    string                 `yaml:"category"`
	Rarity      string                 `yaml:"rarity"`
	Price       int                    `yaml:"price"`
	Stock       *int                   `yaml:"stock,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type ManagersFile struct {
	Managers []ManagerData `yaml:"managers"`
}

type OperatorsFile struct {
	Operators []OperatorData `yaml:"operators"`
}

type MissionsFile struct {
	Missions []MissionData `yaml:"missions"`
}

type AchievementsFile struct {
	Achievements []AchievementData `yaml:"achievements"`
}

type RewardsFile struct {
	Rewards []RewardData `yaml:"rewards"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Retries cover a dockerized Postgres that is still starting
	retries := cfg.DBConnectRetries
	if retries < 60 {
		retries = 60
	}
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:       logger.Silent,
		ConnectRetries: retries,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "data/initial"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var (
		managers     []ManagerData
		operators    []OperatorData
		missions     []MissionData
		achievements []AchievementData
		rewards      []RewardData
	)

	if err := readYAMLFiles(dataDir, "managers", func(data []byte) error {
		var file ManagersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		managers = append(managers, file.Managers...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load managers: %w", err)
	}

	if err := readYAMLFiles(dataDir, "operators", func(data []byte) error {
		var file OperatorsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		operators = append(operators, file.Operators...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load operators: %w", err)
	}

	if err := readYAMLFiles(dataDir, "missions", func(data []byte) error {
		var file MissionsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		missions = append(missions, file.Missions...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load missions: %w", err)
	}

	if err := readYAMLFiles(dataDir, "achievements", func(data []byte) error {
		var file AchievementsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		achievements = append(achievements, file.Achievements...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}

	if err := readYAMLFiles(dataDir, "rewards", func(data []byte) error {
		var file RewardsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		rewards = append(rewards, file.Rewards...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load rewards: %w", err)
	}

	// Managers first so operators can reference them
	managerMap := make(map[string]uuid.UUID)
	created := 0
	for _, m := range managers {
		id, isNew, err := createManager(db, m)
		if err != nil {
			return fmt.Errorf("failed to create manager %s: %w", m.Email, err)
		}
		managerMap[m.Email] = id
		if isNew {
			created++
		}
	}
	log.Printf("📋 Managers: %d created, %d total", created, len(managers))

	created = 0
	for _, o := range operators {
		isNew, err := createOperator(db, o, managerMap)
		if err != nil {
			return fmt.Errorf("failed to create operator %s: %w", o.Email, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("📋 Operators: %d created, %d total", created, len(operators))

	created = 0
	for _, m := range missions {
		isNew, err := upsertByTitle(db, &models.Mission{
			Title:        m.Title,
			Description:  m.Description,
			Cadence:      models.MissionCadence(m.Cadence),
			Action:       models.ActionType(m.Action),
			TargetValue:  m.TargetValue,
			RewardPoints: m.RewardPoints,
			IsActive:     true,
		}, m.Title)
		if err != nil {
			return fmt.Errorf("failed to create mission %s: %w", m.Title, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("📋 Missions: %d created, %d total", created, len(missions))

	created = 0
	for _, a := range achievements {
		condition := models.AchievementCondition(a.ConditionType)
		if !condition.IsValid() {
			return fmt.Errorf("achievement %s: unknown condition %q", a.Title, a.ConditionType)
		}
		isNew, err := upsertByTitle(db, &models.Achievement{
			Title:         a.Title,
			Description:   a.Description,
			Icon:          a.Icon,
			ConditionType: condition,
			Threshold:     a.Threshold,
			RewardPoints:  a.RewardPoints,
			IsActive:      true,
		}, a.Title)
		if err != nil {
			return fmt.Errorf("failed to create achievement %s: %w", a.Title, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("📋 Achievements: %d created, %d total", created, len(achievements))

	created = 0
	for _, r := range rewards {
		rarity := models.RewardRarity(r.Rarity)
		if rarity == "" {
			rarity = models.RewardRarityCommon
		}
		var metadata datatypes.JSON
		if len(r.Metadata) > 0 {
			raw, err := json.Marshal(r.Metadata)
			if err != nil {
				return fmt.Errorf("reward %s: invalid metadata: %w", r.Title, err)
			}
			metadata = datatypes.JSON(raw)
		}
		isNew, err := upsertByTitle(db, &models.Reward{
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Rarity:      rarity,
			Price:       r.Price,
			IsAvailable: true,
			Stock:       r.Stock,
			Metadata:    metadata,
		}, r.Title)
		if err != nil {
			return fmt.Errorf("failed to create reward %s: %w", r.Title, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("📋 Rewards: %d created, %d total", created, len(rewards))

	return nil
}

// readYAMLFiles hands every .yaml file under dataDir whose name contains
// kind to decode
func readYAMLFiles(dataDir, kind string, decode func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := decode(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createManager(db *gorm.DB, data ManagerData) (uuid.UUID, bool, error) {
	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return uuid.Nil, false, err
	}
	manager := models.Manager{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hash,
		Department:   data.Department,
		IsActive:     true,
	}
	err = insertAccount(db, &manager, apperrors.ErrManagerExists)
	if errors.Is(err, apperrors.ErrManagerExists) {
		var existing models.Manager
		if err := db.Select("id").Where("email = ?", data.Email).First(&existing).Error; err != nil {
			return uuid.Nil, false, fmt.Errorf("failed to query manager: %w", err)
		}
		return existing.ID, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return manager.ID, true, nil
}

func createOperator(db *gorm.DB, data OperatorData, managerMap map[string]uuid.UUID) (bool, error) {
	var managerID *uuid.UUID
	if data.ManagerEmail != "" {
		id, ok := managerMap[data.ManagerEmail]
		if !ok {
			log.Printf("⚠️  Warning: manager %s not found for operator %s", data.ManagerEmail, data.Email)
		} else {
			managerID = &id
		}
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	operator := models.Operator{
		ManagerID:    managerID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hash,
		Level:        1,
		NextLevelXP:  100,
		Status:       models.OperatorStatusOffline,
		IsActive:     true,
	}
	err = insertAccount(db, &operator, apperrors.ErrOperatorExists)
	if errors.Is(err, apperrors.ErrOperatorExists) {
		return false, nil
	}
	return err == nil, err
}

// insertAccount creates an account row, reporting a taken email as exists
func insertAccount(db *gorm.DB, account interface{}, exists error) error {
	err := db.Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return exists
	}
	if err != nil {
		return fmt.Errorf("failed to create %T: %w", account, err)
	}
	return nil
}

// upsertByTitle creates row unless a row of the same table already carries title
func upsertByTitle(db *gorm.DB, row interface{}, title string) (bool, error) {
	var count int64
	if err := db.Model(row).Where("title = ?", title).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query %T: %w", row, err)
	}
	if count > 0 {
		return false, nil
	}
	if err := db.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
