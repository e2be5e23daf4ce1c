package bookmaker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// Client talks to the bookmaker's JSON API. It is explicitly constructed and
// passed into components; sessions derived from it are owned by exactly one
// profile task for the task's lifetime, so session state is never shared
// between concurrent tasks.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// ClientConfig holds bookmaker client configuration
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration // every call carries this timeout so a hung request cannot starve the worker pool
	RequestsPerSec float64
	UserAgent      string
}

// NewClient creates a new bookmaker API client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	burst := int(config.RequestsPerSec)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:   config.BaseURL,
		userAgent: config.UserAgent,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSec), burst),
		logger:  logger.With().Str("component", "bookmaker_client").Logger(),
	}
}

// wire shapes: the feed serializes numeric fields as strings

type matchDetailsResponse struct {
	Meta struct {
		ParentMatchID string `json:"parent_match_id"`
	} `json:"meta"`
	Data []struct {
		SubTypeID string `json:"sub_type_id"`
		Odds      []struct {
			OddKey          string `json:"odd_key"`
			OddValue        string `json:"odd_value"`
			OutcomeID       string `json:"outcome_id"`
			SpecialBetValue string `json:"special_bet_value"`
		} `json:"odds"`
	} `json:"data"`
}

// GetMatchDetails fetches the live open markets for one fixture. A fixture the
// feed no longer lists yields (nil, nil), not an error.
func (c *Client) GetMatchDetails(ctx context.Context, parentMatchID string) (*models.MatchDetails, error) {
	var resp matchDetailsResponse
	found, err := c.get(ctx, "/v1/uo/match?parent_match_id="+parentMatchID, &resp)
	if err != nil {
		return nil, err
	}
	if !found || len(resp.Data) == 0 {
		return nil, nil
	}

	details := &models.MatchDetails{
		ParentMatchID: resp.Meta.ParentMatchID,
		Markets:       make([]models.Market, 0, len(resp.Data)),
		FetchedAt:     time.Now().UTC(),
	}
	if details.ParentMatchID == "" {
		details.ParentMatchID = parentMatchID
	}

	for _, datum := range resp.Data {
		subTypeID, err := strconv.Atoi(datum.SubTypeID)
		if err != nil {
			c.logger.Warn().
				Str("parent_match_id", parentMatchID).
				Str("sub_type_id", datum.SubTypeID).
				Msg("skipping market with malformed sub_type_id")
			continue
		}

		market := models.Market{SubTypeID: subTypeID, Odds: make([]models.MarketOutcome, 0, len(datum.Odds))}
		for _, odd := range datum.Odds {
			value, err := decimal.NewFromString(odd.OddValue)
			if err != nil {
				c.logger.Warn().
					Str("parent_match_id", parentMatchID).
					Str("odd_key", odd.OddKey).
					Str("odd_value", odd.OddValue).
					Msg("skipping outcome with malformed odd")
				continue
			}
			outcomeID, _ := strconv.Atoi(odd.OutcomeID)
			market.Odds = append(market.Odds, models.MarketOutcome{
				OddKey:          odd.OddKey,
				OddValue:        value,
				OutcomeID:       outcomeID,
				SpecialBetValue: odd.SpecialBetValue,
			})
		}
		details.Markets = append(details.Markets, market)
	}

	return details, nil
}

// GetMatchResult fetches the final score for a fixture, used by the result
// resolver. Unfinished or unknown fixtures yield (nil, nil).
func (c *Client) GetMatchResult(ctx context.Context, parentMatchID string) (*models.MatchResult, error) {
	var resp struct {
		Data struct {
			ParentMatchID string `json:"parent_match_id"`
			HomeScore     string `json:"home_score"`
			AwayScore     string `json:"away_score"`
			Status        string `json:"status"`
		} `json:"data"`
	}
	found, err := c.get(ctx, "/v1/match/result?parent_match_id="+parentMatchID, &resp)
	if err != nil {
		return nil, err
	}
	if !found || resp.Data.Status != "finished" {
		return nil, nil
	}

	home, err := strconv.Atoi(resp.Data.HomeScore)
	if err != nil {
		return nil, fmt.Errorf("malformed home score %q: %w", resp.Data.HomeScore, err)
	}
	away, err := strconv.Atoi(resp.Data.AwayScore)
	if err != nil {
		return nil, fmt.Errorf("malformed away score %q: %w", resp.Data.AwayScore, err)
	}

	return &models.MatchResult{
		ParentMatchID: parentMatchID,
		HomeScore:     home,
		AwayScore:     away,
		Finished:      true,
	}, nil
}

// get performs a rate-limited GET, decoding the response body into out.
// Returns found=false for 404s and empty bodies.
func (c *Client) get(ctx context.Context, path string, out any) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return true, nil
}

// post performs a rate-limited POST with a JSON body, decoding into out.
func (c *Client) post(ctx context.Context, path string, token string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d for %s: %s", resp.StatusCode, path, snippet)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
}
