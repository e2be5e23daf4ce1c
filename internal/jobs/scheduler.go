// Package jobs runs the periodic background sweeps on cron schedules.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/config"
)

// Task is a single background sweep
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc adapts a plain function to the Task interface
type TaskFunc func(ctx context.Context) error

// Run executes the wrapped function
func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Scheduler owns the cron runner for the staking and result-resolution
// sweeps. Sweeps run to completion even if the schedule fires again; the
// cron runner serializes entries per job.
type Scheduler struct {
	cron    *cron.Cron
	staking Task
	results Task
	logger  zerolog.Logger
}

// NewScheduler creates a scheduler for the configured sweeps
func NewScheduler(staking, results Task, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		staking: staking,
		results: results,
		logger:  logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the sweeps and starts the cron runner. The context is
// passed through to each sweep invocation.
func (s *Scheduler) Start(ctx context.Context, cfg config.JobsConfig) error {
	if _, err := s.cron.AddFunc(cfg.StakingSchedule, func() {
		s.logger.Info().Str("job", "staking").Msg("starting scheduled staking sweep")
		if err := s.staking.Run(ctx); err != nil {
			s.logger.Error().Err(err).Str("job", "staking").Msg("staking sweep failed")
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(cfg.ResultsSchedule, func() {
		s.logger.Info().Str("job", "results").Msg("starting scheduled result sweep")
		if err := s.results.Run(ctx); err != nil {
			s.logger.Error().Err(err).Str("job", "results").Msg("result sweep failed")
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().
		Str("staking_schedule", cfg.StakingSchedule).
		Str("results_schedule", cfg.ResultsSchedule).
		Msg("scheduler started")
	return nil
}

// Stop halts the cron runner and waits for in-flight jobs to finish
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info().Msg("scheduler stopped")
}
