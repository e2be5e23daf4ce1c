package bookmaker

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Session is an authenticated bookmaker account session. A session belongs to
// exactly one profile task and is never shared across goroutines.
type Session struct {
	client  *Client
	token   string
	phone   string
	balance decimal.Decimal
}

// Login authenticates a profile and returns a session holding its token and
// current balance.
func (c *Client) Login(ctx context.Context, phone, password string) (*Session, error) {
	var resp struct {
		Token   string `json:"token"`
		Balance string `json:"balance"`
	}
	body := map[string]string{"mobile": phone, "password": password, "src": "desktop"}
	if err := c.post(ctx, "/v1/login", "", body, &resp); err != nil {
		return nil, fmt.Errorf("login failed for %s: %w", phone, err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login for %s returned no token", phone)
	}

	balance, err := decimal.NewFromString(resp.Balance)
	if err != nil {
		return nil, fmt.Errorf("login for %s returned malformed balance %q: %w", phone, resp.Balance, err)
	}

	c.logger.Info().Str("phone", phone).Msg("logged in")

	return &Session{
		client:  c,
		token:   resp.Token,
		phone:   phone,
		balance: balance,
	}, nil
}

// Balance returns the balance captured at login or the last refresh.
func (s *Session) Balance() decimal.Decimal {
	return s.balance
}

// RefreshBalance re-reads the live balance from the bookmaker.
func (s *Session) RefreshBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp struct {
		Balance string `json:"balance"`
	}
	if err := s.client.post(ctx, "/v1/balance", s.token, map[string]string{}, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("balance refresh failed: %w", err)
	}

	balance, err := decimal.NewFromString(resp.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed balance %q: %w", resp.Balance, err)
	}

	s.balance = balance
	return balance, nil
}

type betSlipEntry struct {
	SubTypeID       int    `json:"sub_type_id"`
	BetPick         string `json:"bet_pick"`
	OddValue        string `json:"odd_value"`
	OutcomeID       int    `json:"outcome_id"`
	SpecialBetValue string `json:"special_bet_value,omitempty"`
	ParentMatchID   string `json:"parent_match_id"`
	BetType         int    `json:"bet_type"`
}

// PlaceBet submits one composite slip and returns the bookmaker's confirmation
// code. The caller paces successive submissions.
func (s *Session) PlaceBet(ctx context.Context, slip models.CompositeSlip, stake int64) (string, error) {
	entries := make([]betSlipEntry, 0, len(slip.Selections))
	for _, sel := range slip.Selections {
		entries = append(entries, betSlipEntry{
			SubTypeID:       sel.SubTypeID,
			BetPick:         sel.BetPick,
			OddValue:        sel.Odd.String(),
			OutcomeID:       sel.OutcomeID,
			SpecialBetValue: sel.SpecialBetValue,
			ParentMatchID:   sel.ParentMatchID,
			BetType:         7,
		})
	}

	body := map[string]any{
		"betslip":   entries,
		"total_odd": slip.TotalOdd.String(),
		"stake":     stake,
	}

	var resp struct {
		Data struct {
			Code string `json:"code"`
		} `json:"data"`
	}
	if err := s.client.post(ctx, "/v1/bet", s.token, body, &resp); err != nil {
		return "", fmt.Errorf("bet placement failed: %w", err)
	}
	if resp.Data.Code == "" {
		return "", fmt.Errorf("bet placement returned no confirmation code")
	}

	s.client.logger.Info().
		Str("phone", s.phone).
		Str("code", resp.Data.Code).
		Int64("stake", stake).
		Str("total_odd", slip.TotalOdd.String()).
		Int("legs", len(slip.Selections)).
		Msg("bet placed")

	return resp.Data.Code, nil
}

// Withdraw requests a withdrawal of the given amount and refreshes the cached
// balance afterwards so repeat-withdrawal loops observe the reduced balance.
func (s *Session) Withdraw(ctx context.Context, amount int64) error {
	body := map[string]any{"amount": amount}
	if err := s.client.post(ctx, "/v1/withdraw", s.token, body, nil); err != nil {
		return fmt.Errorf("withdrawal of %d failed: %w", amount, err)
	}

	s.client.logger.Info().Str("phone", s.phone).Int64("amount", amount).Msg("withdrawal requested")

	if _, err := s.RefreshBalance(ctx); err != nil {
		return fmt.Errorf("post-withdrawal balance refresh failed: %w", err)
	}
	return nil
}
