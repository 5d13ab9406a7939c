package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/barbell-api/internal/api/shared"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/service"
)

// StatsHandler handles stats settings and analytics HTTP requests.
type StatsHandler struct {
	statsService service.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsHandler{
		statsService: statsService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /programs/{programID}/stats.
// The optional sleep_adjustment=true query parameter conditions fatigue
// scoring on the days' recorded sleep quality.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	opts := analytics.Options{
		SleepAdjustment: r.URL.Query().Get("sleep_adjustment") == "true",
	}

	result, err := h.statsService.ComputeProgramStats(r.Context(), userID, programID, opts)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	h.logger.Debug("computed program stats",
		slog.String("program_id", programID.String()),
		slog.Bool("sleep_adjustment", opts.SleepAdjustment))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetSettings handles GET /programs/{programID}/settings.
func (h *StatsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	settings, err := h.statsService.GetSettings(r.Context(), userID, programID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settings)
}

// UpdateSettings handles PUT /programs/{programID}/settings.
func (h *StatsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	settings, err := h.statsService.UpdateSettings(r.Context(), userID, programID, service.SettingsUpdate{
		ExerciseLabel: req.ExerciseLabel,
		SetsLabel:     req.SetsLabel,
		RepsLabel:     req.RepsLabel,
		WeightLabel:   req.WeightLabel,
		RPELabel:      req.RPELabel,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settings)
}
