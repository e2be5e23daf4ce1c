package staking

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// setupTestBuilder creates a builder with the given batch size
func setupTestBuilder(batchSize int) *Builder {
	params := Params{
		BatchSize:      batchSize,
		UsableFraction: decimal.NewFromFloat(0.5),
		MinBalance:     decimal.NewFromInt(1),
	}
	return NewBuilder(params, zerolog.Nop())
}

// makeSelections builds n selections with distinct match ids and the given odds
func makeSelections(odds ...float64) []models.Selection {
	selections := make([]models.Selection, 0, len(odds))
	for i, odd := range odds {
		selections = append(selections, models.Selection{
			ID:            uuid.New(),
			ParentMatchID: fmt.Sprintf("match-%d", i),
			SubTypeID:     models.MarketTotals,
			BetPick:       "over 1.5",
			Odd:           decimal.NewFromFloat(odd),
		})
	}
	return selections
}

// TestBuild_FullBatchesWithDroppedTrailing pins the boundary case: 10 selections
// at batch size 4 yields two sealed slips; the trailing pair is exactly half a
// batch and is discarded, not kept.
func TestBuild_FullBatchesWithDroppedTrailing(t *testing.T) {
	builder := setupTestBuilder(4)
	selections := makeSelections(1.5, 1.5, 1.5, 1.5, 2.0, 2.0, 2.0, 2.0, 3.0, 3.0)

	slips := builder.Build(selections)

	require.Len(t, slips, 2)
	assert.Len(t, slips[0].Selections, 4)
	assert.Len(t, slips[1].Selections, 4)

	consumed := 0
	for _, slip := range slips {
		consumed += len(slip.Selections)
	}
	assert.Equal(t, 8, consumed, "two selections should be left for the next cycle")
}

// TestBuild_TrailingKeptAboveHalfBatch verifies that a trailing group strictly
// larger than half a batch is sealed: batch size 4 keeps a trailing 3.
func TestBuild_TrailingKeptAboveHalfBatch(t *testing.T) {
	builder := setupTestBuilder(4)
	selections := makeSelections(1.5, 1.5, 1.5, 1.5, 2.0, 2.0, 2.0)

	slips := builder.Build(selections)

	require.Len(t, slips, 2)
	assert.Len(t, slips[0].Selections, 4)
	assert.Len(t, slips[1].Selections, 3)
}

// TestBuild_OddBatchSizeTrailing verifies the true-division threshold for an odd
// batch size: 5/2 = 2.5, so a trailing 3 is kept and a trailing 2 is not.
func TestBuild_OddBatchSizeTrailing(t *testing.T) {
	builder := setupTestBuilder(5)

	kept := builder.Build(makeSelections(1.2, 1.2, 1.2, 1.2, 1.2, 1.3, 1.3, 1.3))
	require.Len(t, kept, 2)
	assert.Len(t, kept[1].Selections, 3)

	dropped := builder.Build(makeSelections(1.2, 1.2, 1.2, 1.2, 1.2, 1.3, 1.3))
	require.Len(t, dropped, 1)
}

// TestBuild_TotalOddIsProduct verifies the combined odd of each slip
func TestBuild_TotalOddIsProduct(t *testing.T) {
	builder := setupTestBuilder(3)
	selections := makeSelections(1.5, 2.0, 1.8)

	slips := builder.Build(selections)

	require.Len(t, slips, 1)
	expected := 1.5 * 2.0 * 1.8
	assert.InDelta(t, expected, slips[0].TotalOdd.InexactFloat64(), 1e-9)
}

// TestBuild_PreservesInputOrder verifies that concatenating slip members yields
// a prefix of the input in the original order.
func TestBuild_PreservesInputOrder(t *testing.T) {
	builder := setupTestBuilder(2)
	selections := makeSelections(1.1, 1.2, 1.3, 1.4, 1.5)

	slips := builder.Build(selections)

	require.Len(t, slips, 2)
	var flattened []models.Selection
	for _, slip := range slips {
		flattened = append(flattened, slip.Selections...)
	}
	require.Len(t, flattened, 4)
	for i, sel := range flattened {
		assert.Equal(t, selections[i].ParentMatchID, sel.ParentMatchID)
	}
}

// TestBuild_EmptyInput verifies empty input yields no slips and no error
func TestBuild_EmptyInput(t *testing.T) {
	builder := setupTestBuilder(4)

	assert.Empty(t, builder.Build(nil))
	assert.Empty(t, builder.Build([]models.Selection{}))
}

// TestBuild_BatchSizeOne verifies every selection becomes its own slip
func TestBuild_BatchSizeOne(t *testing.T) {
	builder := setupTestBuilder(1)
	selections := makeSelections(1.5, 2.0, 2.5)

	slips := builder.Build(selections)

	require.Len(t, slips, 3)
	for i, slip := range slips {
		assert.Len(t, slip.Selections, 1)
		assert.InDelta(t, selections[i].Odd.InexactFloat64(), slip.TotalOdd.InexactFloat64(), 1e-9)
	}
}

// TestBuild_UndersizedInputDropped verifies an input smaller than half a batch
// produces nothing at all.
func TestBuild_UndersizedInputDropped(t *testing.T) {
	builder := setupTestBuilder(6)
	selections := makeSelections(1.5, 2.0, 2.5)

	slips := builder.Build(selections)

	assert.Empty(t, slips)
}
