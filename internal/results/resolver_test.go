package results

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/bet-staking-service/internal/mocks"
	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// testResolverSetup is a helper struct to hold test dependencies
type testResolverSetup struct {
	resolver *Resolver
	provider *mocks.MockResultProvider
	store    *mocks.MockResultStore
	ctx      context.Context
}

// setupTestResolver creates a resolver with mocked dependencies
func setupTestResolver(t *testing.T) *testResolverSetup {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockResultProvider(ctrl)
	store := mocks.NewMockResultStore(ctrl)

	return &testResolverSetup{
		resolver: NewResolver(provider, store, zerolog.Nop()),
		provider: provider,
		store:    store,
		ctx:      context.Background(),
	}
}

func startedSelection(subTypeID int, betPick string) models.Selection {
	return models.Selection{
		ID:            uuid.New(),
		ParentMatchID: "match-1",
		HomeTeam:      "Arsenal",
		AwayTeam:      "Chelsea",
		SubTypeID:     subTypeID,
		BetPick:       betPick,
	}
}

// TestResolve_SettlesFinishedMatch tests the full sweep for one selection
func TestResolve_SettlesFinishedMatch(t *testing.T) {
	setup := setupTestResolver(t)
	sel := startedSelection(models.MarketTotals, "over 1.5")

	setup.store.EXPECT().FetchStartedSelections(setup.ctx).Return([]models.Selection{sel}, nil)
	setup.provider.EXPECT().
		GetMatchResult(setup.ctx, "match-1").
		Return(&models.MatchResult{ParentMatchID: "match-1", HomeScore: 2, AwayScore: 1, Finished: true}, nil)
	setup.store.EXPECT().
		UpdateSelectionResult(setup.ctx, sel.ID.String(), 2, 1, models.StatusWon).
		Return(nil)

	assert.NoError(t, setup.resolver.Resolve(setup.ctx))
}

// TestResolve_SkipsUnfinished tests that matches still in play are left pending
func TestResolve_SkipsUnfinished(t *testing.T) {
	setup := setupTestResolver(t)
	sel := startedSelection(models.MarketTotals, "over 1.5")

	setup.store.EXPECT().FetchStartedSelections(setup.ctx).Return([]models.Selection{sel}, nil)
	setup.provider.EXPECT().GetMatchResult(setup.ctx, "match-1").Return(nil, nil)

	assert.NoError(t, setup.resolver.Resolve(setup.ctx))
}

// TestResolve_ScoreLookupFailureSkips tests per-selection fail-soft behavior
func TestResolve_ScoreLookupFailureSkips(t *testing.T) {
	setup := setupTestResolver(t)
	sel := startedSelection(models.MarketTotals, "over 1.5")

	setup.store.EXPECT().FetchStartedSelections(setup.ctx).Return([]models.Selection{sel}, nil)
	setup.provider.EXPECT().GetMatchResult(setup.ctx, "match-1").Return(nil, errors.New("feed timeout"))

	assert.NoError(t, setup.resolver.Resolve(setup.ctx))
}

// TestResolve_FetchFailureAborts tests that the initial query error propagates
func TestResolve_FetchFailureAborts(t *testing.T) {
	setup := setupTestResolver(t)

	setup.store.EXPECT().FetchStartedSelections(setup.ctx).Return(nil, errors.New("db down"))

	require.Error(t, setup.resolver.Resolve(setup.ctx))
}

// TestSettle covers the market settlement rules
func TestSettle(t *testing.T) {
	tests := []struct {
		name      string
		subTypeID int
		betPick   string
		home      int
		away      int
		want      string
	}{
		{"home win by name", models.MarketMatchWinner, "Arsenal", 2, 0, models.StatusWon},
		{"home win numeric pick", models.MarketMatchWinner, "1", 2, 0, models.StatusWon},
		{"home pick loses", models.MarketMatchWinner, "1", 0, 1, models.StatusLost},
		{"draw pick wins", models.MarketMatchWinner, "draw", 1, 1, models.StatusWon},
		{"away win by name", models.MarketMatchWinner, "Chelsea", 0, 3, models.StatusWon},
		{"unknown winner pick voids", models.MarketMatchWinner, "someone", 1, 0, models.StatusVoid},
		{"over hits", models.MarketTotals, "over 1.5", 1, 1, models.StatusWon},
		{"over misses", models.MarketTotals, "over 2.5", 1, 1, models.StatusLost},
		{"under hits", models.MarketTotals, "under 2.5", 1, 0, models.StatusWon},
		{"malformed totals pick voids", models.MarketTotals, "over", 1, 1, models.StatusVoid},
		{"btts yes wins", models.MarketBothTeamsScore, "yes", 1, 1, models.StatusWon},
		{"btts yes loses", models.MarketBothTeamsScore, "yes", 2, 0, models.StatusLost},
		{"btts no wins", models.MarketBothTeamsScore, "no", 2, 0, models.StatusWon},
		{"unknown market voids", 999, "whatever", 1, 1, models.StatusVoid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := startedSelection(tt.subTypeID, tt.betPick)
			result := &models.MatchResult{HomeScore: tt.home, AwayScore: tt.away, Finished: true}
			assert.Equal(t, tt.want, Settle(sel, result))
		})
	}
}
