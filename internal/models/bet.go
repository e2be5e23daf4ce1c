package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Match result statuses written by the result resolver.
const (
	StatusPending = "pending"
	StatusWon     = "won"
	StatusLost    = "lost"
	StatusVoid    = "void"
)

// Well-known market type codes used by the result resolver.
const (
	MarketMatchWinner    = 1  // 1X2
	MarketTotals         = 18 // over/under
	MarketBothTeamsScore = 29 // both teams to score
)

// Selection represents a single predicted betting-market pick for one fixture.
// Produced by the upstream prediction pipeline and persisted until kickoff passes.
type Selection struct {
	ID              uuid.UUID       `json:"id"`
	ParentMatchID   string          `json:"parent_match_id"`
	Kickoff         time.Time       `json:"kickoff"`
	HomeTeam        string          `json:"home_team"`
	AwayTeam        string          `json:"away_team"`
	League          string          `json:"league"`
	SubTypeID       int             `json:"sub_type_id"`
	BetPick         string          `json:"bet_pick"`
	OutcomeID       int             `json:"outcome_id"`
	Odd             decimal.Decimal `json:"odd"` // stale until refreshed against the live feed
	SpecialBetValue string          `json:"special_bet_value,omitempty"`
	OverallProb     float64         `json:"overall_prob,omitempty"`
}

// CompositeSlip is an ordered, fixed-capacity group of selections staked as one
// accumulator bet. TotalOdd is the product of member odds. Slips are ephemeral:
// built fresh each cycle, never persisted as entities.
type CompositeSlip struct {
	Selections []Selection     `json:"selections"`
	TotalOdd   decimal.Decimal `json:"total_odd"`
}

// Profile is one bettor account managed by the system. Created and activated by
// operator tooling; the staking core only reads active profiles.
type Profile struct {
	ID       int64  `json:"profile_id"`
	Phone    string `json:"phone"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active"`
}

// Betslip is the persisted record of a placed composite bet member. The
// (profile_id, parent_match_id) pair marks a fixture as already staked for that
// profile and excludes it from future candidate queries. This is the sole
// de-duplication mechanism, per profile rather than global.
type Betslip struct {
	Code          string    `json:"code"`
	ProfileID     int64     `json:"profile_id"`
	ParentMatchID string    `json:"parent_match_id"`
	PlacedAt      time.Time `json:"placed_at"`
}

// MarketOutcome is one priced outcome within a live market.
type MarketOutcome struct {
	OddKey          string          `json:"odd_key"`
	OddValue        decimal.Decimal `json:"odd_value"`
	OutcomeID       int             `json:"outcome_id"`
	SpecialBetValue string          `json:"special_bet_value,omitempty"`
}

// Market is one bet type currently offered on a fixture in the live feed.
type Market struct {
	SubTypeID int             `json:"sub_type_id"`
	Odds      []MarketOutcome `json:"odds"`
}

// MatchDetails is the live feed's view of one fixture's open markets.
type MatchDetails struct {
	ParentMatchID string    `json:"parent_match_id"`
	Markets       []Market  `json:"markets"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// MatchResult carries the final score for a finished fixture.
type MatchResult struct {
	ParentMatchID string `json:"parent_match_id"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`
	Finished      bool   `json:"finished"`
}

// KafkaSelectionsMessage is the batch envelope published by the prediction pipeline.
type KafkaSelectionsMessage struct {
	Selections []Selection `json:"selections"`
	Timestamp  time.Time   `json:"timestamp"`
	BatchID    string      `json:"batch_id"`
}
