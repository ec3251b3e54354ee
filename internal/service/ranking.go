package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"callcenter-gamification-backend/internal/cache"
	"callcenter-gamification-backend/internal/config"
	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"
	"callcenter-gamification-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	rankingCachePrefix = "ranking:"
	maxRankingLimit    = 100
	weeklyWindow       = 7 * 24 * time.Hour
	monthlyWindow      = 30 * 24 * time.Hour
)

// RankingResponse represents a leaderboard for one period
type RankingResponse struct {
	Period  repository.RankingPeriod `json:"periodo"`
	Entries []models.RankingEntry    `json:"ranking"`
}

// RecalculateResponse reports a ranking recomputation
type RecalculateResponse struct {
	Operators int       `json:"operadores"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// RankingService serves and recomputes the leaderboard
type RankingService struct {
	repos        *repository.Repositories
	cache        cache.Cache
	ttl          time.Duration
	defaultLimit int
	now          func() time.Time
}

// NewRankingService creates a new ranking service
func NewRankingService(repos *repository.Repositories, c cache.Cache, cfg *config.Config) *RankingService {
	limit := cfg.RankingDefaultLimit
	if limit <= 0 {
		limit = 20
	}
	if c == nil {
		c = cache.NewNoop()
	}
	return &RankingService{
		repos:        repos,
		cache:        c,
		ttl:          cfg.RankingCacheTTL(),
		defaultLimit: limit,
		now:          time.Now,
	}
}

// GetRanking returns the leaderboard of a period. An empty period means weekly.
func (s *RankingService) GetRanking(ctx context.Context, period string, limit int) (*RankingResponse, error) {
	p := repository.RankingPeriod(period)
	if p == "" {
		p = repository.RankingWeekly
	}
	if !p.IsValid() {
		return nil, apperrors.ErrInvalidRankingPeriod
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}

	key := fmt.Sprintf("%s%s:%d", rankingCachePrefix, p, limit)
	var cached RankingResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("ranking cache read failed")
	}
	if hit {
		return &cached, nil
	}

	entries, err := s.repos.WithContext(ctx).Rankings.GetOrdered(p, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load ranking: %w", err)
	}
	if entries == nil {
		entries = []models.RankingEntry{}
	}

	resp := &RankingResponse{Period: p, Entries: entries}
	if err := s.cache.Set(ctx, key, resp, s.ttl); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("ranking cache write failed")
	}
	return resp, nil
}

// Recalculate rebuilds the ranking table from finalized calls of the last 7
// and 30 days. Positions follow weekly points, then monthly points, then name.
func (s *RankingService) Recalculate(ctx context.Context) (*RecalculateResponse, error) {
	now := s.now()
	var count int

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		operators, err := tx.Operators.GetAllActive()
		if err != nil {
			return fmt.Errorf("failed to load operators: %w", err)
		}
		weekly, err := tx.Stats.TotalsSince(now.Add(-weeklyWindow))
		if err != nil {
			return fmt.Errorf("failed to aggregate weekly totals: %w", err)
		}
		monthly, err := tx.Stats.TotalsSince(now.Add(-monthlyWindow))
		if err != nil {
			return fmt.Errorf("failed to aggregate monthly totals: %w", err)
		}

		rows := buildRankings(operators, weekly, monthly)
		count = len(rows)
		return tx.Rankings.UpsertMany(rows)
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.DeletePrefix(ctx, rankingCachePrefix); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("ranking cache invalidation failed")
	}
	logger.WithContext(ctx).WithField("operators", count).Info("ranking recalculated")

	return &RecalculateResponse{Operators: count, UpdatedAt: now}, nil
}

func buildRankings(operators []models.Operator, weekly, monthly []repository.OperatorCallTotals) []models.Ranking {
	weeklyByOp := make(map[uuid.UUID]repository.OperatorCallTotals, len(weekly))
	for _, t := range weekly {
		weeklyByOp[t.OperatorID] = t
	}
	monthlyByOp := make(map[uuid.UUID]repository.OperatorCallTotals, len(monthly))
	for _, t := range monthly {
		monthlyByOp[t.OperatorID] = t
	}

	sorted := make([]models.Operator, len(operators))
	copy(sorted, operators)
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, wj := weeklyByOp[sorted[i].ID], weeklyByOp[sorted[j].ID]
		if wi.Points != wj.Points {
			return wi.Points > wj.Points
		}
		mi, mj := monthlyByOp[sorted[i].ID], monthlyByOp[sorted[j].ID]
		if mi.Points != mj.Points {
			return mi.Points > mj.Points
		}
		return sorted[i].Name < sorted[j].Name
	})

	rows := make([]models.Ranking, 0, len(sorted))
	for i, op := range sorted {
		w, m := weeklyByOp[op.ID], monthlyByOp[op.ID]
		rows = append(rows, models.Ranking{
			OperatorID:    op.ID,
			WeeklyPoints:  int(w.Points),
			MonthlyPoints: int(m.Points),
			WeeklyCalls:   int(w.Calls),
			MonthlyCalls:  int(m.Calls),
			Position:      i + 1,
		})
	}
	return rows
}
