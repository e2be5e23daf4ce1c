package results

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// ResultProvider is an interface over the live score feed
// This allows for easier testing and mocking
type ResultProvider interface {
	GetMatchResult(ctx context.Context, parentMatchID string) (*models.MatchResult, error)
}

// ResultStore is an interface over the store's resolution paths
type ResultStore interface {
	FetchStartedSelections(ctx context.Context) ([]models.Selection, error)
	UpdateSelectionResult(ctx context.Context, selectionID string, homeScore, awayScore int, status string) error
}

// Resolver settles stored selections once their fixtures finish, marking them
// won, lost or void for downstream reporting.
type Resolver struct {
	provider ResultProvider
	store    ResultStore
	logger   zerolog.Logger
}

// NewResolver creates a new result resolver
func NewResolver(provider ResultProvider, store ResultStore, logger zerolog.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		store:    store,
		logger:   logger.With().Str("component", "result_resolver").Logger(),
	}
}

// Resolve sweeps unresolved selections whose kickoff has passed. Per-selection
// failures are logged and skipped; only the initial fetch aborts the sweep.
func (r *Resolver) Resolve(ctx context.Context) error {
	selections, err := r.store.FetchStartedSelections(ctx)
	if err != nil {
		return err
	}
	if len(selections) == 0 {
		return nil
	}

	resolved := 0
	for _, sel := range selections {
		result, err := r.provider.GetMatchResult(ctx, sel.ParentMatchID)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("parent_match_id", sel.ParentMatchID).
				Msg("score lookup failed, will retry next sweep")
			continue
		}
		if result == nil {
			// still in play
			continue
		}

		status := Settle(sel, result)
		if err := r.store.UpdateSelectionResult(ctx, sel.ID.String(), result.HomeScore, result.AwayScore, status); err != nil {
			r.logger.Error().
				Err(err).
				Str("selection_id", sel.ID.String()).
				Msg("failed to record result")
			continue
		}
		resolved++
	}

	r.logger.Info().
		Int("pending", len(selections)).
		Int("resolved", resolved).
		Msg("result sweep complete")
	return nil
}

// Settle decides won/lost for the market types the system stakes. Markets it
// cannot interpret settle void rather than guessing.
func Settle(sel models.Selection, result *models.MatchResult) string {
	home, away := result.HomeScore, result.AwayScore

	switch sel.SubTypeID {
	case models.MarketMatchWinner:
		return settleWinner(sel, home, away)
	case models.MarketTotals:
		return settleTotals(sel, home, away)
	case models.MarketBothTeamsScore:
		return settleBothScore(sel, home, away)
	default:
		return models.StatusVoid
	}
}

func settleWinner(sel models.Selection, home, away int) string {
	pick := strings.ToLower(strings.TrimSpace(sel.BetPick))
	var won bool
	switch {
	case pick == "1" || pick == strings.ToLower(sel.HomeTeam):
		won = home > away
	case pick == "x" || pick == "draw":
		won = home == away
	case pick == "2" || pick == strings.ToLower(sel.AwayTeam):
		won = away > home
	default:
		return models.StatusVoid
	}
	if won {
		return models.StatusWon
	}
	return models.StatusLost
}

func settleTotals(sel models.Selection, home, away int) string {
	pick := strings.ToLower(strings.TrimSpace(sel.BetPick))
	fields := strings.Fields(pick)
	if len(fields) != 2 {
		return models.StatusVoid
	}
	line, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return models.StatusVoid
	}

	total := float64(home + away)
	switch fields[0] {
	case "over":
		if total > line {
			return models.StatusWon
		}
		return models.StatusLost
	case "under":
		if total < line {
			return models.StatusWon
		}
		return models.StatusLost
	default:
		return models.StatusVoid
	}
}

func settleBothScore(sel models.Selection, home, away int) string {
	both := home > 0 && away > 0
	switch strings.ToLower(strings.TrimSpace(sel.BetPick)) {
	case "yes", "gg":
		if both {
			return models.StatusWon
		}
		return models.StatusLost
	case "no", "ng":
		if !both {
			return models.StatusWon
		}
		return models.StatusLost
	default:
		return models.StatusVoid
	}
}
