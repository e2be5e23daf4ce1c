package staking

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAllocator creates an allocator with the given usable fraction
func setupTestAllocator(fraction float64) *Allocator {
	params := Params{
		BatchSize:      4,
		UsableFraction: decimal.NewFromFloat(fraction),
		MinBalance:     decimal.NewFromInt(1),
	}
	return NewAllocator(params, zerolog.Nop())
}

// TestAllocate_EvenSplit pins the reference scenario: balance 1000 at fraction
// 0.5 over 2 batches stakes 250 per slip.
func TestAllocate_EvenSplit(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	stake, err := allocator.Allocate(decimal.NewFromInt(1000), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(250), stake)
}

// TestAllocate_FlooredDivision verifies the stake is floored, not rounded
func TestAllocate_FlooredDivision(t *testing.T) {
	allocator := setupTestAllocator(1.0)

	stake, err := allocator.Allocate(decimal.NewFromInt(100), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(33), stake)
}

// TestAllocate_MinimumStake verifies balance 10 at fraction 0.5 over 5 batches
// lands exactly on the 1-unit floor.
func TestAllocate_MinimumStake(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	stake, err := allocator.Allocate(decimal.NewFromInt(10), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stake)
}

// TestAllocate_ZeroBalance verifies the floor still yields the 1-unit minimum
// with no balance at all; rejecting unaffordable stakes is the bookmaker's job.
func TestAllocate_ZeroBalance(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	stake, err := allocator.Allocate(decimal.Zero, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stake)
}

// TestAllocate_JustAboveZero verifies a sub-unit usable balance is forced up to
// the 1-unit minimum rather than staking zero.
func TestAllocate_JustAboveZero(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	stake, err := allocator.Allocate(decimal.NewFromFloat(1.5), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stake)
}

// TestAllocate_ZeroBatches verifies the explicit invalid-argument error
func TestAllocate_ZeroBatches(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	stake, err := allocator.Allocate(decimal.NewFromInt(1000), 0)

	require.ErrorIs(t, err, ErrNoBatches)
	assert.Zero(t, stake)
}

// TestAllocate_NegativeBatches verifies negative counts are rejected the same way
func TestAllocate_NegativeBatches(t *testing.T) {
	allocator := setupTestAllocator(0.5)

	_, err := allocator.Allocate(decimal.NewFromInt(1000), -1)

	require.ErrorIs(t, err, ErrNoBatches)
}

// TestAllocate_FullFraction verifies fraction 1.0 commits the whole balance
func TestAllocate_FullFraction(t *testing.T) {
	allocator := setupTestAllocator(1.0)

	stake, err := allocator.Allocate(decimal.NewFromInt(600), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(300), stake)
}
