package services

import (
	"context"
	"math"

	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/isdelr/passpocket-be/internal/store"
)

// StatsServiceProvider defines the interface for vault statistics.
type StatsServiceProvider interface {
	ComputeStats(ctx context.Context) (models.VaultStats, error)
}

// StatsService computes aggregate statistics and the vault health score.
type StatsService struct {
	store store.RecordStore
}

// NewStatsService creates a new StatsService.
func NewStatsService(store store.RecordStore) *StatsService {
	return &StatsService{store: store}
}

// ComputeStats reads the full record set and derives totals, per-category
// counts and the health score. An empty vault scores 100.
func (s *StatsService) ComputeStats(ctx context.Context) (models.VaultStats, error) {
	records, err := s.store.List(ctx, models.ListFilter{})
	if err != nil {
		return models.VaultStats{}, err
	}

	stats := models.VaultStats{
		Total:       len(records),
		Categories:  make(map[string]int),
		HealthScore: 100,
	}

	for _, record := range records {
		if record.IsFavorite {
			stats.Favorites++
		}
		stats.Categories[record.Category]++
	}

	if len(records) > 0 {
		stats.HealthScore = healthScore(records)
	}
	return stats, nil
}

// healthScore penalizes duplicate passwords (up to 40 points) and passwords
// shorter than 8 characters (up to 30 points). Distinctness is exact string
// equality over the stored values.
func healthScore(records []models.CredentialRecord) int {
	distinct := make(map[string]struct{}, len(records))
	short := 0
	for _, record := range records {
		distinct[record.Password] = struct{}{}
		if len(record.Password) < 8 {
			short++
		}
	}

	total := float64(len(records))
	duplicateRatio := 1 - float64(len(distinct))/total
	shortRatio := float64(short) / total

	score := math.Round(100 - duplicateRatio*40 - shortRatio*30)
	return int(math.Min(100, math.Max(0, score)))
}
