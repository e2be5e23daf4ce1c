package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics. Registered once at package init via promauto.
var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_staking_bets_placed_total",
		Help: "Composite bets successfully placed at the bookmaker.",
	})

	BetsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_staking_bets_failed_total",
		Help: "Composite bet submissions rejected or failed.",
	})

	BetslipWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_staking_betslip_write_failures_total",
		Help: "Placed bets whose local betslip record could not be written; each needs manual reconciliation.",
	})

	WithdrawalsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_staking_withdrawals_requested_total",
		Help: "Withdrawal requests issued against bookmaker accounts.",
	})

	ProfileCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_staking_profile_cycles_total",
		Help: "Profile staking cycles by terminal state.",
	}, []string{"state"})

	SelectionsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_staking_selections_ingested_total",
		Help: "Predicted selections persisted from the ingest topic.",
	})
)
