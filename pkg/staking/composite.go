package staking

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Params holds the staking engine parameters
type Params struct {
	BatchSize      int             // selections per composite slip
	UsableFraction decimal.Decimal // fraction of balance committed per cycle
	MinBalance     decimal.Decimal // profiles below this are skipped
}

// Builder groups refreshed selections into composite (accumulator) slips
type Builder struct {
	params Params
	logger zerolog.Logger
}

// NewBuilder creates a new composite slip builder
func NewBuilder(params Params, logger zerolog.Logger) *Builder {
	return &Builder{
		params: params,
		logger: logger.With().Str("component", "composite_builder").Logger(),
	}
}

// BatchSize returns the configured slip capacity
func (b *Builder) BatchSize() int {
	return b.params.BatchSize
}

// Build groups selections, in input order, into slips of exactly BatchSize
// members. The combined odd of each slip is the product of its members' odds.
// A partial trailing group survives only when it holds strictly more than half
// a batch (true division: batch size 4 needs at least 3 members); otherwise it
// is discarded for this cycle and its selections stay unstaked for the next one.
func (b *Builder) Build(selections []models.Selection) []models.CompositeSlip {
	if len(selections) == 0 {
		return nil
	}

	batchSize := b.params.BatchSize
	slips := make([]models.CompositeSlip, 0, len(selections)/batchSize+1)

	members := make([]models.Selection, 0, batchSize)
	totalOdd := decimal.NewFromInt(1)

	for _, sel := range selections {
		members = append(members, sel)
		totalOdd = totalOdd.Mul(sel.Odd)

		if len(members) == batchSize {
			slips = append(slips, models.CompositeSlip{
				Selections: members,
				TotalOdd:   totalOdd,
			})
			members = make([]models.Selection, 0, batchSize)
			totalOdd = decimal.NewFromInt(1)
		}
	}

	// 2*len > batchSize is the integer form of len > batchSize/2 under true division
	if 2*len(members) > batchSize {
		slips = append(slips, models.CompositeSlip{
			Selections: members,
			TotalOdd:   totalOdd,
		})
	} else if len(members) > 0 {
		b.logger.Debug().
			Int("dropped", len(members)).
			Int("batch_size", batchSize).
			Msg("trailing group below minimum fill, deferred to next cycle")
	}

	b.logger.Info().
		Int("input_count", len(selections)).
		Int("slip_count", len(slips)).
		Msg("composite slips built")

	return slips
}
