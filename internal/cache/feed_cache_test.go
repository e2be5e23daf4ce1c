package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// testFeedCacheSetup is a helper struct to hold test dependencies
type testFeedCacheSetup struct {
	cache     *FeedCache
	miniRedis *miniredis.Miniredis
	ctx       context.Context
}

// setupTestFeedCache creates a test cache with miniredis
func setupTestFeedCache(t *testing.T) *testFeedCacheSetup {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	config := FeedCacheConfig{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
		TTL:      2 * time.Minute,
	}

	return &testFeedCacheSetup{
		cache:     NewFeedCache(config, zerolog.Nop()),
		miniRedis: mr,
		ctx:       context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testFeedCacheSetup) cleanup() {
	s.cache.Close()
	s.miniRedis.Close()
}

func sampleMatchDetails() *models.MatchDetails {
	return &models.MatchDetails{
		ParentMatchID: "match-123",
		Markets: []models.Market{
			{
				SubTypeID: models.MarketTotals,
				Odds: []models.MarketOutcome{
					{OddKey: "over 1.5", OddValue: decimal.NewFromFloat(1.45), OutcomeID: 12},
					{OddKey: "under 1.5", OddValue: decimal.NewFromFloat(2.60), OutcomeID: 13},
				},
			},
		},
		FetchedAt: time.Now().UTC(),
	}
}

// TestSetMatch_Success tests successful caching of match details
func TestSetMatch_Success(t *testing.T) {
	setup := setupTestFeedCache(t)
	defer setup.cleanup()

	err := setup.cache.SetMatch(setup.ctx, sampleMatchDetails())

	assert.NoError(t, err)
	assert.True(t, setup.miniRedis.Exists("feed:match:match-123"))
}

// TestGetMatch_RoundTrip tests that cached details come back intact
func TestGetMatch_RoundTrip(t *testing.T) {
	setup := setupTestFeedCache(t)
	defer setup.cleanup()

	details := sampleMatchDetails()
	require.NoError(t, setup.cache.SetMatch(setup.ctx, details))

	got, err := setup.cache.GetMatch(setup.ctx, "match-123")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, details.ParentMatchID, got.ParentMatchID)
	require.Len(t, got.Markets, 1)
	require.Len(t, got.Markets[0].Odds, 2)
	assert.True(t, got.Markets[0].Odds[0].OddValue.Equal(decimal.NewFromFloat(1.45)))
}

// TestGetMatch_Miss tests that a cache miss is not an error
func TestGetMatch_Miss(t *testing.T) {
	setup := setupTestFeedCache(t)
	defer setup.cleanup()

	got, err := setup.cache.GetMatch(setup.ctx, "missing")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestGetMatch_Expired tests that entries expire with the configured TTL
func TestGetMatch_Expired(t *testing.T) {
	setup := setupTestFeedCache(t)
	defer setup.cleanup()

	require.NoError(t, setup.cache.SetMatch(setup.ctx, sampleMatchDetails()))
	setup.miniRedis.FastForward(3 * time.Minute)

	got, err := setup.cache.GetMatch(setup.ctx, "match-123")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestPing tests the connection check
func TestPing(t *testing.T) {
	setup := setupTestFeedCache(t)
	defer setup.cleanup()

	assert.NoError(t, setup.cache.Ping(setup.ctx))

	setup.miniRedis.Close()
	assert.Error(t, setup.cache.Ping(setup.ctx))
}
