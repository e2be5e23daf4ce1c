package staking

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNoBatches is returned when stake allocation is requested for zero slips.
// The builder returning an empty slip list is the guard; reaching the allocator
// with zero batches is a programming error, not a business outcome.
var ErrNoBatches = errors.New("staking: cannot allocate a stake across zero batches")

// Allocator computes the uniform per-slip stake for one staking cycle
type Allocator struct {
	params Params
	logger zerolog.Logger
}

// NewAllocator creates a new stake allocator
func NewAllocator(params Params, logger zerolog.Logger) *Allocator {
	return &Allocator{
		params: params,
		logger: logger.With().Str("component", "stake_allocator").Logger(),
	}
}

// Allocate divides the usable share of the opening balance evenly across the
// cycle's slips. The stake is an integer number of units, floored at 1 so any
// usable balance still places the minimum bet. The same stake applies to every
// slip in the cycle; it is computed once from the opening balance and not
// re-read per slip.
func (a *Allocator) Allocate(balance decimal.Decimal, numBatches int) (int64, error) {
	if numBatches <= 0 {
		return 0, ErrNoBatches
	}

	usable := balance.Mul(a.params.UsableFraction)
	stake := usable.Div(decimal.NewFromInt(int64(numBatches))).IntPart()

	if stake < 1 {
		stake = 1
	}

	a.logger.Debug().
		Str("balance", balance.String()).
		Str("usable", usable.String()).
		Int("batches", numBatches).
		Int64("stake", stake).
		Msg("stake allocated")

	return stake, nil
}
