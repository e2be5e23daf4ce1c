package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Bookmaker is an interface that abstracts the bookmaker API client
// This allows for easier testing and mocking
type Bookmaker interface {
	Login(ctx context.Context, phone, password string) (Session, error)
}

// Session is one profile's authenticated bookmaker session. A session is owned
// by a single profile task for the task's lifetime and is not safe for
// concurrent use.
type Session interface {
	Balance() decimal.Decimal
	RefreshBalance(ctx context.Context) (decimal.Decimal, error)
	PlaceBet(ctx context.Context, slip models.CompositeSlip, stake int64) (string, error)
	Withdraw(ctx context.Context, amount int64) error
}
