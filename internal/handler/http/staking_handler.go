package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// BetslipReader is an interface over the store's reporting reads
type BetslipReader interface {
	RecentBetslips(ctx context.Context, profileID int64, limit int) ([]models.Betslip, error)
}

// RunTrigger starts one withdraw-and-stake sweep
type RunTrigger interface {
	Run(ctx context.Context) error
}

// StakingHandler exposes the operator HTTP surface: recent betslips per
// profile and an on-demand staking run. The cron scheduler remains the
// primary driver; the trigger exists for operator convenience.
type StakingHandler struct {
	betslips BetslipReader
	trigger  RunTrigger
	running  atomic.Bool
	logger   zerolog.Logger
}

// NewStakingHandler creates a new staking HTTP handler
func NewStakingHandler(betslips BetslipReader, trigger RunTrigger, logger zerolog.Logger) *StakingHandler {
	return &StakingHandler{
		betslips: betslips,
		trigger:  trigger,
		logger:   logger.With().Str("component", "staking_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *StakingHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/profiles/:profile_id/betslips - recent placed slips
	mux.HandleFunc("/api/v1/profiles/", h.handleGetBetslips)

	// POST /api/v1/runs - trigger a staking run
	mux.HandleFunc("/api/v1/runs", h.handleTriggerRun)
}

// handleGetBetslips handles GET /api/v1/profiles/:profile_id/betslips
func (h *StakingHandler) handleGetBetslips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/profiles/:profile_id/betslips
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/profiles/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "betslips" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/profiles/:profile_id/betslips")
		return
	}

	profileID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "profile_id must be an integer")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	slips, err := h.betslips.RecentBetslips(r.Context(), profileID, limit)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("profile_id", profileID).
			Msg("failed to retrieve betslips")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve betslips")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"profile_id": profileID,
		"count":      len(slips),
		"betslips":   slips,
	})
}

// handleTriggerRun handles POST /api/v1/runs. At most one triggered run is in
// flight at a time; the run itself proceeds detached from the request.
func (h *StakingHandler) handleTriggerRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.running.CompareAndSwap(false, true) {
		h.errorResponse(w, http.StatusConflict, "a staking run is already in progress")
		return
	}

	go func() {
		defer h.running.Store(false)
		if err := h.trigger.Run(context.Background()); err != nil {
			h.logger.Error().Err(err).Msg("triggered staking run failed")
		}
	}()

	h.jsonResponse(w, http.StatusAccepted, map[string]string{
		"status": "started",
	})
}

// jsonResponse writes a JSON response
func (h *StakingHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *StakingHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
