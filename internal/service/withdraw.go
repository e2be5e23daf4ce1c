package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-staking-service/internal/metrics"
)

// WithdrawalConfig holds the balance-management policy applied before staking
type WithdrawalConfig struct {
	MinAmount   int64 // withdrawals below this are skipped
	MaxAmount   int64 // per-request ceiling
	MaxAttempts int   // bound on the repeat-while-capped loop
}

// WithdrawalEngine sweeps a capped fraction of an account's balance out before
// staking. Invoked once per profile per run.
type WithdrawalEngine struct {
	config WithdrawalConfig
	logger zerolog.Logger
}

// NewWithdrawalEngine creates a new withdrawal engine
func NewWithdrawalEngine(config WithdrawalConfig, logger zerolog.Logger) *WithdrawalEngine {
	return &WithdrawalEngine{
		config: config,
		logger: logger.With().Str("component", "withdrawal_engine").Logger(),
	}
}

// Withdraw repeatedly takes floor(balance/3), capped per request, until the
// computed amount drops below the minimum. Each successful withdrawal shrinks
// the balance, so the loop terminates on its own under correct bookmaker
// semantics; MaxAttempts bounds it anyway in case the reported balance never
// decreases. Errors are logged and swallowed: a failed withdrawal must not
// block the staking that follows.
func (w *WithdrawalEngine) Withdraw(ctx context.Context, profileID int64, session Session) {
	logger := w.logger.With().Int64("profile_id", profileID).Logger()
	three := decimal.NewFromInt(3)

	for attempt := 0; attempt < w.config.MaxAttempts; attempt++ {
		amount := session.Balance().Div(three).IntPart()
		capped := amount >= w.config.MaxAmount
		if capped {
			amount = w.config.MaxAmount
		}
		if amount < w.config.MinAmount {
			return
		}

		logger.Info().Int64("amount", amount).Msg("requesting withdrawal")
		if err := session.Withdraw(ctx, amount); err != nil {
			logger.Error().Err(err).Int64("amount", amount).Msg("withdrawal failed")
			return
		}
		metrics.WithdrawalsRequested.Inc()

		// The cap not being hit means the sweep is complete for this run.
		if !capped {
			return
		}
	}

	logger.Warn().
		Int("max_attempts", w.config.MaxAttempts).
		Msg("withdrawal loop hit attempt bound; balance not decreasing as expected")
}
