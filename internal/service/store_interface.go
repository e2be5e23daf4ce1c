package service

import (
	"context"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Store is an interface that abstracts the relational store
// This allows for easier testing and mocking
type Store interface {
	// GetActiveProfiles returns all profiles with is_active set.
	GetActiveProfiles(ctx context.Context) ([]models.Profile, error)

	// FetchUnplacedSelections returns, kickoff-ascending, stored selections
	// whose fixture has not yet kicked off and has no betslip row for this
	// profile.
	FetchUnplacedSelections(ctx context.Context, profileID int64) ([]models.Selection, error)

	// AddBetslip records one betslip row per member selection under the
	// bookmaker's confirmation code.
	AddBetslip(ctx context.Context, profileID int64, selections []models.Selection, code string) error
}
