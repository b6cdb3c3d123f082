package services

import (
	"context"
	"testing"

	"github.com/isdelr/passpocket-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsFixture(t *testing.T) (*StatsService, *VaultService) {
	t.Helper()
	recordStore := newTestStore(t)
	return NewStatsService(recordStore), NewVaultService(recordStore, &eventRecorder{})
}

func TestComputeStats_EmptyVault(t *testing.T) {
	statsSvc, _ := newTestStatsFixture(t)

	stats, err := statsSvc.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Favorites)
	assert.Empty(t, stats.Categories)
	assert.Equal(t, 100, stats.HealthScore)
}

func TestComputeStats_DuplicatePenalty(t *testing.T) {
	statsSvc, vaultSvc := newTestStatsFixture(t)
	ctx := context.Background()

	// Four records, one duplicated secret, all length >= 8:
	// duplicateRatio 0.25, shortRatio 0 -> round(100 - 10) = 90.
	for _, password := range []string{"alpha-secret", "alpha-secret", "bravo-secret", "charlie-secret"} {
		_, err := vaultSvc.CreateRecord(ctx, models.RecordInput{Title: "entry", Password: password})
		require.NoError(t, err)
	}

	stats, err := statsSvc.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 90, stats.HealthScore)
}

func TestComputeStats_DuplicateAndShortPenalty(t *testing.T) {
	statsSvc, vaultSvc := newTestStatsFixture(t)
	ctx := context.Background()

	// All four secrets identical and shorter than 8 characters:
	// duplicateRatio 0.75, shortRatio 1 -> round(100 - 30 - 30) = 40.
	for i := 0; i < 4; i++ {
		_, err := vaultSvc.CreateRecord(ctx, models.RecordInput{Title: "entry", Password: "abc"})
		require.NoError(t, err)
	}

	stats, err := statsSvc.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.HealthScore)
}

func TestComputeStats_CountsFavoritesAndCategories(t *testing.T) {
	statsSvc, vaultSvc := newTestStatsFixture(t)
	ctx := context.Background()

	inputs := []models.RecordInput{
		{Title: "Bank", Password: "long-enough-1", Category: "finance", IsFavorite: true},
		{Title: "Broker", Password: "long-enough-2", Category: "finance"},
		{Title: "Mastodon", Password: "long-enough-3", Category: "social", IsFavorite: true},
		{Title: "Junk drawer", Password: "long-enough-4"},
	}
	for _, input := range inputs {
		_, err := vaultSvc.CreateRecord(ctx, input)
		require.NoError(t, err)
	}

	stats, err := statsSvc.ComputeStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Favorites)
	assert.Equal(t, map[string]int{"finance": 2, "social": 1, "other": 1}, stats.Categories)
	assert.Equal(t, 100, stats.HealthScore)
}
