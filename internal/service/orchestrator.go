package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Orchestrator fans the withdraw-then-stake cycle out across all active
// profiles on a bounded worker pool. Profile tasks are fully isolated: a panic
// or error in one task is contained at the task boundary and never reaches its
// siblings. Profiles touch disjoint data, so no locking is needed between
// tasks; betslip inserts rely on the store's uniqueness constraint to make
// duplicate-insert races harmless.
type Orchestrator struct {
	store      Store
	bookmaker  Bookmaker
	withdrawer *WithdrawalEngine
	executor   *ProfileBetExecutor
	poolSize   int
	logger     zerolog.Logger
}

// NewOrchestrator creates a new concurrent profile orchestrator
func NewOrchestrator(
	store Store,
	bookmaker Bookmaker,
	withdrawer *WithdrawalEngine,
	executor *ProfileBetExecutor,
	poolSize int,
	logger zerolog.Logger,
) *Orchestrator {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Orchestrator{
		store:      store,
		bookmaker:  bookmaker,
		withdrawer: withdrawer,
		executor:   executor,
		poolSize:   poolSize,
		logger:     logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Run executes one full withdraw-and-stake sweep and waits for every profile
// task to finish. The only failure it propagates is the active-profile fetch:
// without the profile list there is no partial run to attempt.
func (o *Orchestrator) Run(ctx context.Context) error {
	profiles, err := o.store.GetActiveProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch active profiles: %w", err)
	}
	if len(profiles) == 0 {
		o.logger.Info().Msg("no active profiles, nothing to do")
		return nil
	}

	o.logger.Info().
		Int("profiles", len(profiles)).
		Int("pool_size", o.poolSize).
		Msg("starting staking run")

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.poolSize)

	for _, profile := range profiles {
		wg.Add(1)
		sem <- struct{}{}
		go func(p models.Profile) {
			defer wg.Done()
			defer func() { <-sem }()
			o.runProfile(ctx, p)
		}(profile)
	}

	wg.Wait()
	o.logger.Info().Msg("staking run complete")
	return nil
}

// runProfile is the per-task boundary: every error and panic stops here.
func (o *Orchestrator) runProfile(ctx context.Context, profile models.Profile) {
	logger := o.logger.With().Int64("profile_id", profile.ID).Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("profile task panicked")
		}
	}()

	session, err := o.bookmaker.Login(ctx, profile.Phone, profile.Password)
	if err != nil {
		logger.Error().Err(err).Msg("login failed, skipping profile")
		return
	}

	o.withdrawer.Withdraw(ctx, profile.ID, session)

	report, err := o.executor.Execute(ctx, profile, session)
	if err != nil {
		logger.Error().Err(err).Str("state", string(report.State)).Msg("staking cycle aborted")
		return
	}

	logger.Info().
		Str("state", string(report.State)).
		Int("placed", report.Placed).
		Int("failed", report.Failed).
		Msg("profile task finished")
}
