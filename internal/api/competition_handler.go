package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/api/shared"
	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/service"
)

// CompetitionHandler handles competition log HTTP requests.
type CompetitionHandler struct {
	competitionService service.CompetitionService
	logger             *slog.Logger
}

// NewCompetitionHandler creates a new CompetitionHandler.
func NewCompetitionHandler(
	competitionService service.CompetitionService,
	logger *slog.Logger,
) *CompetitionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CompetitionHandler{
		competitionService: competitionService,
		logger:             logger.With(slog.String("component", "competition_handler")),
	}
}

// CreateCompetition handles POST /competitions.
func (h *CompetitionHandler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CompetitionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	competition, err := competitionFromRequest(userID, uuid.Nil, &req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid competition data: "+err.Error())
		return
	}

	created, err := h.competitionService.CreateCompetition(r.Context(), competition)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// GetCompetition handles GET /competitions/{competitionID}.
func (h *CompetitionHandler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	userID, competitionID, ok := requireUserAndPathUUID(w, r, "competitionID")
	if !ok {
		return
	}

	competition, err := h.competitionService.GetCompetition(r.Context(), userID, competitionID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, competition)
}

// ListCompetitions handles GET /competitions, oldest meet first.
func (h *CompetitionHandler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	competitions, err := h.competitionService.ListCompetitions(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if competitions == nil {
		competitions = []*domain.Competition{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, competitions)
}

// UpdateCompetition handles PUT /competitions/{competitionID}.
func (h *CompetitionHandler) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	userID, competitionID, ok := requireUserAndPathUUID(w, r, "competitionID")
	if !ok {
		return
	}

	var req CompetitionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	competition, err := competitionFromRequest(userID, competitionID, &req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid competition data: "+err.Error())
		return
	}

	if err := h.competitionService.UpdateCompetition(r.Context(), userID, competition); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, competition)
}

// DeleteCompetition handles DELETE /competitions/{competitionID}.
func (h *CompetitionHandler) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	userID, competitionID, ok := requireUserAndPathUUID(w, r, "competitionID")
	if !ok {
		return
	}

	if err := h.competitionService.DeleteCompetition(r.Context(), userID, competitionID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProgress handles GET /competitions/progress. Returns the meet-over-meet
// best-lift series used by progress charts.
func (h *CompetitionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	points, err := h.competitionService.Progress(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if points == nil {
		points = []service.CompetitionProgressPoint{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, points)
}

// competitionFromRequest builds the domain competition for a create (nil
// competitionID) or replace (existing competitionID) request.
func competitionFromRequest(
	userID, competitionID uuid.UUID,
	req *CompetitionRequest,
) (*domain.Competition, error) {
	meetDate, err := time.Parse("2006-01-02", req.MeetDate)
	if err != nil {
		return nil, err
	}

	competition, err := domain.NewCompetition(userID, req.MeetName, meetDate)
	if err != nil {
		return nil, err
	}
	if competitionID != uuid.Nil {
		competition.ID = competitionID
	}

	competition.WeightClass = req.WeightClass
	competition.BodyweightKg = req.BodyweightKg
	competition.Squat = toAttempts(req.Squat)
	competition.Bench = toAttempts(req.Bench)
	competition.Deadlift = toAttempts(req.Deadlift)
	competition.PlacingRank = req.PlacingRank
	competition.Notes = req.Notes

	return competition, nil
}
