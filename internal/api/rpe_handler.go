package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/barbell-api/internal/api/shared"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
)

// defaultRoundingIncrement is the kg step loads are rounded to when the
// request does not specify one. Matches a pair of 1.25kg plates.
const defaultRoundingIncrement = 2.5

// RPEHandler serves the RPE chart calculator. It is stateless; all inputs
// come from the request.
type RPEHandler struct {
	logger *slog.Logger
}

// NewRPEHandler creates a new RPEHandler.
func NewRPEHandler(logger *slog.Logger) *RPEHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &RPEHandler{
		logger: logger.With(slog.String("component", "rpe_handler")),
	}
}

// Chart handles POST /tools/rpe-chart. It estimates a one-rep max from a
// known performance, derives the load for the target prescription, and
// returns chart entries around the target RPE.
func (h *RPEHandler) Chart(w http.ResponseWriter, r *http.Request) {
	var req RPEChartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	oneRepMax, ok := analytics.EstimateOneRepMax(req.KnownWeight, req.KnownReps, req.KnownRPE)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"No chart entry for the given rep count and RPE")
		return
	}

	targetLoad, ok := analytics.LoadForTarget(oneRepMax, req.TargetReps, req.TargetRPE)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"No chart entry for the target rep count and RPE")
		return
	}

	increment := req.Increment
	if increment <= 0 {
		increment = defaultRoundingIncrement
	}

	entries := analytics.NearbyEntries(req.TargetReps, req.TargetRPE, oneRepMax, increment)
	response := RPEChartResponse{
		OneRepMax:  oneRepMax,
		TargetLoad: targetLoad,
		Entries:    make([]analyticsChartEntry, 0, len(entries)),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, analyticsChartEntry{
			RPE:        e.RPE,
			Percentage: e.Percentage,
			Weight:     e.Weight,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
