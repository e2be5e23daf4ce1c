package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// PostgresStore persists selections, profiles and betslip records. Writes are
// safe under concurrent profile tasks: betslips carries a uniqueness constraint
// on (profile_id, parent_match_id), so duplicate-insert races resolve to no-ops.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// PostgresConfig holds connection pool configuration
type PostgresConfig struct {
	URL          string
	MaxConns     int32
	ConnLifetime time.Duration
}

// NewPostgresStore creates a store backed by a pgx connection pool
func NewPostgresStore(ctx context.Context, config PostgresConfig, logger zerolog.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	if config.ConnLifetime > 0 {
		poolConfig.MaxConnLifetime = config.ConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &PostgresStore{
		pool:   pool,
		logger: logger.With().Str("component", "postgres_store").Logger(),
	}, nil
}

// GetActiveProfiles returns every profile flagged active
func (s *PostgresStore) GetActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT profile_id, phone, password
		FROM profiles
		WHERE is_active IS TRUE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		p := models.Profile{IsActive: true}
		if err := rows.Scan(&p.ID, &p.Phone, &p.Password); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// FetchUnplacedSelections returns, kickoff-ascending, selections for fixtures
// that have not kicked off and carry no betslip row for this profile. The
// betslip exclusion is the staking de-duplication mechanism.
func (s *PostgresStore) FetchUnplacedSelections(ctx context.Context, profileID int64) ([]models.Selection, error) {
	rows, err := s.pool.Query(ctx, `
		WITH m AS (
			SELECT id, kickoff, home_team, away_team, league, odd,
			       parent_match_id, sub_type_id, bet_pick, special_bet_value, outcome_id
			FROM matches
			WHERE kickoff > NOW()
		),
		placed AS (
			SELECT parent_match_id
			FROM betslips
			WHERE profile_id = $1
		)
		SELECT id, kickoff, home_team, away_team, league, odd,
		       parent_match_id, sub_type_id, bet_pick, special_bet_value, outcome_id
		FROM m
		WHERE parent_match_id NOT IN (SELECT parent_match_id FROM placed)
		ORDER BY kickoff
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unplaced selections: %w", err)
	}
	defer rows.Close()

	var selections []models.Selection
	for rows.Next() {
		var sel models.Selection
		var special *string
		if err := rows.Scan(
			&sel.ID, &sel.Kickoff, &sel.HomeTeam, &sel.AwayTeam, &sel.League, &sel.Odd,
			&sel.ParentMatchID, &sel.SubTypeID, &sel.BetPick, &special, &sel.OutcomeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		if special != nil {
			sel.SpecialBetValue = *special
		}
		selections = append(selections, sel)
	}
	return selections, rows.Err()
}

// AddBetslip records one row per member selection under the confirmation code.
// ON CONFLICT DO NOTHING makes a duplicate insert from a racing writer harmless.
func (s *PostgresStore) AddBetslip(ctx context.Context, profileID int64, selections []models.Selection, code string) error {
	if len(selections) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, sel := range selections {
		batch.Queue(`
			INSERT INTO betslips (code, profile_id, parent_match_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (profile_id, parent_match_id) DO NOTHING
		`, code, profileID, sel.ParentMatchID)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range selections {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert betslip rows: %w", err)
		}
	}

	s.logger.Debug().
		Int64("profile_id", profileID).
		Str("code", code).
		Int("legs", len(selections)).
		Msg("betslip recorded")
	return nil
}

// InsertSelections upserts predicted selections from the ingest pipeline,
// keyed by selection id so re-delivered batches refresh rather than duplicate.
func (s *PostgresStore) InsertSelections(ctx context.Context, selections []models.Selection) error {
	if len(selections) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, sel := range selections {
		batch.Queue(`
			INSERT INTO matches (id, kickoff, home_team, away_team, league, odd, overall_prob,
			                     parent_match_id, sub_type_id, bet_pick, special_bet_value, outcome_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				odd = EXCLUDED.odd,
				overall_prob = EXCLUDED.overall_prob,
				bet_pick = EXCLUDED.bet_pick
		`, sel.ID, sel.Kickoff, sel.HomeTeam, sel.AwayTeam, sel.League, sel.Odd, sel.OverallProb,
			sel.ParentMatchID, sel.SubTypeID, sel.BetPick, sel.SpecialBetValue, sel.OutcomeID, models.StatusPending)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range selections {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert selections: %w", err)
		}
	}
	return nil
}

// FetchStartedSelections returns unresolved selections whose fixture has kicked
// off, for the result resolver.
func (s *PostgresStore) FetchStartedSelections(ctx context.Context) ([]models.Selection, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, kickoff, home_team, away_team, league, odd,
		       parent_match_id, sub_type_id, bet_pick, COALESCE(special_bet_value, ''), outcome_id
		FROM matches
		WHERE kickoff < NOW()
		  AND (status IS NULL OR status = $1)
	`, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query started selections: %w", err)
	}
	defer rows.Close()

	var selections []models.Selection
	for rows.Next() {
		var sel models.Selection
		if err := rows.Scan(
			&sel.ID, &sel.Kickoff, &sel.HomeTeam, &sel.AwayTeam, &sel.League, &sel.Odd,
			&sel.ParentMatchID, &sel.SubTypeID, &sel.BetPick, &sel.SpecialBetValue, &sel.OutcomeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections = append(selections, sel)
	}
	return selections, rows.Err()
}

// UpdateSelectionResult records the final score and won/lost/void status
func (s *PostgresStore) UpdateSelectionResult(ctx context.Context, selectionID string, homeScore, awayScore int, status string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE matches SET
			home_results = $1,
			away_results = $2,
			status = $3
		WHERE id = $4
	`, homeScore, awayScore, status, selectionID)
	if err != nil {
		return fmt.Errorf("failed to update selection result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no selection with id %s", selectionID)
	}
	return nil
}

// RecentBetslips returns the latest placed-slip records for one profile
func (s *PostgresStore) RecentBetslips(ctx context.Context, profileID int64, limit int) ([]models.Betslip, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT code, profile_id, parent_match_id, placed_at
		FROM betslips
		WHERE profile_id = $1
		ORDER BY placed_at DESC
		LIMIT $2
	`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query betslips: %w", err)
	}
	defer rows.Close()

	var slips []models.Betslip
	for rows.Next() {
		var b models.Betslip
		if err := rows.Scan(&b.Code, &b.ProfileID, &b.ParentMatchID, &b.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan betslip: %w", err)
		}
		slips = append(slips, b)
	}
	return slips, rows.Err()
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	s.pool.Close()
}
