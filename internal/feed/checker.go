package feed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// MatchProvider is an interface that abstracts the live odds feed
// This allows for easier testing and mocking
type MatchProvider interface {
	GetMatchDetails(ctx context.Context, parentMatchID string) (*models.MatchDetails, error)
}

// MatchCache is an interface over the short-TTL feed cache
type MatchCache interface {
	GetMatch(ctx context.Context, parentMatchID string) (*models.MatchDetails, error)
	SetMatch(ctx context.Context, details *models.MatchDetails) error
}

// Checker confirms that a stored selection's market is still open in the live
// feed and refreshes its price. A stored odd is never trusted at staking time.
type Checker struct {
	provider MatchProvider
	cache    MatchCache // optional; nil disables caching
	logger   zerolog.Logger
}

// NewChecker creates a new market availability checker
func NewChecker(provider MatchProvider, cache MatchCache, logger zerolog.Logger) *Checker {
	return &Checker{
		provider: provider,
		cache:    cache,
		logger:   logger.With().Str("component", "availability_checker").Logger(),
	}
}

// Check looks up the selection's fixture in the live feed and scans its markets
// for one with a matching type code whose outcomes include the picked key. On a
// hit the selection is returned with its odd overwritten by the live price.
// No feed data, no matching market, no matching outcome, and any transport or
// parse error all yield ok=false: a temporarily unavailable market must never
// abort the enclosing profile cycle. The selection is not deleted from storage;
// it may come back next cycle or expire at kickoff.
func (c *Checker) Check(ctx context.Context, sel models.Selection) (models.Selection, bool) {
	details, err := c.fetch(ctx, sel.ParentMatchID)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("parent_match_id", sel.ParentMatchID).
			Msg("feed lookup failed, treating market as absent")
		return sel, false
	}
	if details == nil {
		c.logger.Debug().
			Str("parent_match_id", sel.ParentMatchID).
			Msg("fixture not in live feed")
		return sel, false
	}

	for _, market := range details.Markets {
		if market.SubTypeID != sel.SubTypeID {
			continue
		}
		for _, outcome := range market.Odds {
			if outcome.OddKey == sel.BetPick {
				sel.Odd = outcome.OddValue
				return sel, true
			}
		}
	}

	c.logger.Debug().
		Str("parent_match_id", sel.ParentMatchID).
		Int("sub_type_id", sel.SubTypeID).
		Str("bet_pick", sel.BetPick).
		Msg("market or outcome no longer offered")
	return sel, false
}

// fetch reads the fixture from cache first, falling back to the provider.
// Cache errors are logged and ignored; the cache is an optimization, not a
// source of truth.
func (c *Checker) fetch(ctx context.Context, parentMatchID string) (*models.MatchDetails, error) {
	if c.cache != nil {
		cached, err := c.cache.GetMatch(ctx, parentMatchID)
		if err != nil {
			c.logger.Warn().Err(err).Str("parent_match_id", parentMatchID).Msg("feed cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	details, err := c.provider.GetMatchDetails(ctx, parentMatchID)
	if err != nil || details == nil {
		return details, err
	}

	if c.cache != nil {
		if err := c.cache.SetMatch(ctx, details); err != nil {
			c.logger.Warn().Err(err).Str("parent_match_id", parentMatchID).Msg("feed cache write failed")
		}
	}
	return details, nil
}
