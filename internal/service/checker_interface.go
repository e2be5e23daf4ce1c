package service

import (
	"context"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// AvailabilityChecker is an interface over the live-market availability check
// This allows for easier testing and mocking
type AvailabilityChecker interface {
	// Check refreshes a selection's odd against the live feed. ok=false means
	// the market is absent this cycle; it is never an error.
	Check(ctx context.Context, sel models.Selection) (models.Selection, bool)
}
