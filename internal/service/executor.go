package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-staking-service/internal/metrics"
	"github.com/cypherlabdev/bet-staking-service/internal/models"
	"github.com/cypherlabdev/bet-staking-service/pkg/staking"
)

// State is a profile cycle's position in the staking state machine
type State string

const (
	StateIdle              State = "idle"
	StateBalanceChecked    State = "balance_checked"
	StateCandidatesFetched State = "candidates_fetched"
	StateMarketsRefreshed  State = "markets_refreshed"
	StateBatchesBuilt      State = "batches_built"
	StateStakeComputed     State = "stake_computed"
	StateSubmitting        State = "submitting"
	StateDone              State = "done"
	StateSkippedLowBalance State = "skipped_low_balance"
	StateAborted           State = "aborted"
)

// CycleReport summarizes one profile's staking cycle
type CycleReport struct {
	ProfileID  int64
	State      State
	Candidates int
	Available  int
	Batches    int
	Stake      int64
	Placed     int
	Failed     int
}

// ExecutorConfig holds per-cycle policy knobs
type ExecutorConfig struct {
	MinBalance  decimal.Decimal // below this the profile is skipped
	SubmitDelay time.Duration   // pacing between successive slip submissions
}

// ProfileBetExecutor runs the staking cycle for one profile: balance check,
// candidate fetch, market refresh, composite grouping, stake allocation and the
// paced submission loop. Steps are strictly sequential within a cycle.
type ProfileBetExecutor struct {
	config    ExecutorConfig
	store     Store
	checker   AvailabilityChecker
	builder   *staking.Builder
	allocator *staking.Allocator
	logger    zerolog.Logger
}

// NewProfileBetExecutor creates a new per-profile staking executor
func NewProfileBetExecutor(
	config ExecutorConfig,
	store Store,
	checker AvailabilityChecker,
	builder *staking.Builder,
	allocator *staking.Allocator,
	logger zerolog.Logger,
) *ProfileBetExecutor {
	return &ProfileBetExecutor{
		config:    config,
		store:     store,
		checker:   checker,
		builder:   builder,
		allocator: allocator,
		logger:    logger.With().Str("component", "bet_executor").Logger(),
	}
}

// Execute runs one staking cycle against an already-authenticated session.
// An error return corresponds to the Aborted state: something failed outside
// the per-slip submission loop. Empty candidates or empty batches are normal
// Done outcomes, not errors.
func (e *ProfileBetExecutor) Execute(ctx context.Context, profile models.Profile, session Session) (*CycleReport, error) {
	report := &CycleReport{ProfileID: profile.ID, State: StateIdle}
	defer func() {
		metrics.ProfileCycles.WithLabelValues(string(report.State)).Inc()
	}()

	logger := e.logger.With().Int64("profile_id", profile.ID).Logger()

	// Opening balance drives the whole cycle; it is deliberately not re-read
	// per slip even though prior submissions reduce it.
	balance := session.Balance()
	report.State = StateBalanceChecked
	if balance.LessThan(e.config.MinBalance) {
		report.State = StateSkippedLowBalance
		logger.Info().
			Str("balance", balance.String()).
			Str("min_balance", e.config.MinBalance.String()).
			Msg("balance below minimum, skipping profile this cycle")
		return report, nil
	}

	candidates, err := e.store.FetchUnplacedSelections(ctx, profile.ID)
	if err != nil {
		report.State = StateAborted
		return report, fmt.Errorf("failed to fetch unplaced selections: %w", err)
	}
	report.State = StateCandidatesFetched
	report.Candidates = len(candidates)
	if len(candidates) == 0 {
		report.State = StateDone
		logger.Info().Msg("no unplaced candidates, nothing to stake")
		return report, nil
	}

	// Refresh every candidate against the live feed, keeping input order.
	available := make([]models.Selection, 0, len(candidates))
	for _, candidate := range candidates {
		if refreshed, ok := e.checker.Check(ctx, candidate); ok {
			available = append(available, refreshed)
		}
	}
	report.State = StateMarketsRefreshed
	report.Available = len(available)

	slips := e.builder.Build(available)
	report.State = StateBatchesBuilt
	report.Batches = len(slips)
	if len(slips) == 0 {
		report.State = StateDone
		logger.Info().
			Int("candidates", len(candidates)).
			Int("available", len(available)).
			Msg("no full composite slips this cycle")
		return report, nil
	}

	stake, err := e.allocator.Allocate(balance, len(slips))
	if err != nil {
		report.State = StateAborted
		return report, fmt.Errorf("stake allocation failed: %w", err)
	}
	report.State = StateStakeComputed
	report.Stake = stake

	report.State = StateSubmitting
	for i, slip := range slips {
		if i > 0 {
			if err := e.pace(ctx); err != nil {
				report.State = StateAborted
				return report, err
			}
		}

		code, err := session.PlaceBet(ctx, slip, stake)
		if err != nil {
			// One rejected slip must not sink the remaining slips.
			report.Failed++
			metrics.BetsFailed.Inc()
			logger.Error().
				Err(err).
				Int("slip_index", i).
				Str("total_odd", slip.TotalOdd.String()).
				Int64("stake", stake).
				Msg("bet submission failed, continuing with next slip")
			continue
		}
		report.Placed++
		metrics.BetsPlaced.Inc()

		e.persistBetslip(ctx, logger, profile.ID, slip, code)
	}

	report.State = StateDone
	logger.Info().
		Int("batches", report.Batches).
		Int("placed", report.Placed).
		Int("failed", report.Failed).
		Int64("stake", stake).
		Msg("staking cycle complete")
	return report, nil
}

// persistBetslip records the placed slip. The bet already exists at the
// bookmaker, so a write failure here risks duplicate staking next cycle:
// retrying the write is safe (retrying the bet is not), and a final failure is
// logged with full detail for manual reconciliation.
func (e *ProfileBetExecutor) persistBetslip(ctx context.Context, logger zerolog.Logger, profileID int64, slip models.CompositeSlip, code string) {
	err := e.store.AddBetslip(ctx, profileID, slip.Selections, code)
	if err != nil {
		err = e.store.AddBetslip(ctx, profileID, slip.Selections, code)
	}
	if err == nil {
		return
	}

	metrics.BetslipWriteFailures.Inc()
	matchIDs := make([]string, 0, len(slip.Selections))
	for _, sel := range slip.Selections {
		matchIDs = append(matchIDs, sel.ParentMatchID)
	}
	logger.Error().
		Err(err).
		Str("code", code).
		Strs("parent_match_ids", matchIDs).
		Msg("placed bet has no local record; reconcile manually")
}

// pace waits the configured inter-submission delay. The delay keeps the
// bookmaker's rate limiting at bay and must not be removed or parallelized.
func (e *ProfileBetExecutor) pace(ctx context.Context) error {
	if e.config.SubmitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(e.config.SubmitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
