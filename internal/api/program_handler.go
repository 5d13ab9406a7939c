package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/barbell-api/internal/api/shared"
	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/service"
)

// ProgramHandler handles program hierarchy HTTP requests: programs and their
// nested blocks, weeks, days, columns, and rows.
type ProgramHandler struct {
	programService service.ProgramService
	logger         *slog.Logger
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService, logger *slog.Logger) *ProgramHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgramHandler{
		programService: programService,
		logger:         logger.With(slog.String("component", "program_handler")),
	}
}

// CreateProgram handles POST /programs.
func (h *ProgramHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateProgramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	program, err := h.programService.CreateProgram(r.Context(), userID, req.Name)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, program)
}

// ListPrograms handles GET /programs.
func (h *ProgramHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	programs, err := h.programService.ListPrograms(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if programs == nil {
		programs = []*domain.Program{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, programs)
}

// GetProgram handles GET /programs/{programID}.
func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	program, err := h.programService.GetProgram(r.Context(), userID, programID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, program)
}

// RenameProgram handles PUT /programs/{programID}.
func (h *ProgramHandler) RenameProgram(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	var req RenameProgramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	program, err := h.programService.RenameProgram(r.Context(), userID, programID, req.Name)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, program)
}

// DeleteProgram handles DELETE /programs/{programID}.
func (h *ProgramHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	if err := h.programService.DeleteProgram(r.Context(), userID, programID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	h.logger.Debug("program deleted", slog.String("program_id", programID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// CreateBlock handles POST /programs/{programID}/blocks.
func (h *ProgramHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	userID, programID, ok := requireUserAndPathUUID(w, r, "programID")
	if !ok {
		return
	}

	var req CreateBlockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	block, err := h.programService.CreateBlock(r.Context(), userID, programID, req.Name, req.Order)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, block)
}

// UpdateBlock handles PUT /blocks/{blockID}.
func (h *ProgramHandler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	userID, blockID, ok := requireUserAndPathUUID(w, r, "blockID")
	if !ok {
		return
	}

	var req UpdateBlockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	block := &domain.Block{
		ID:    blockID,
		Name:  req.Name,
		Order: req.Order,
	}
	if err := h.programService.UpdateBlock(r.Context(), userID, block); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, block)
}

// DeleteBlock handles DELETE /blocks/{blockID}.
func (h *ProgramHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	userID, blockID, ok := requireUserAndPathUUID(w, r, "blockID")
	if !ok {
		return
	}

	if err := h.programService.DeleteBlock(r.Context(), userID, blockID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateWeek handles POST /blocks/{blockID}/weeks.
func (h *ProgramHandler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	userID, blockID, ok := requireUserAndPathUUID(w, r, "blockID")
	if !ok {
		return
	}

	var req CreateWeekRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	week, err := h.programService.CreateWeek(r.Context(), userID, blockID, req.WeekNumber)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, week)
}

// DeleteWeek handles DELETE /weeks/{weekID}.
func (h *ProgramHandler) DeleteWeek(w http.ResponseWriter, r *http.Request) {
	userID, weekID, ok := requireUserAndPathUUID(w, r, "weekID")
	if !ok {
		return
	}

	if err := h.programService.DeleteWeek(r.Context(), userID, weekID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateDay handles POST /weeks/{weekID}/days.
func (h *ProgramHandler) CreateDay(w http.ResponseWriter, r *http.Request) {
	userID, weekID, ok := requireUserAndPathUUID(w, r, "weekID")
	if !ok {
		return
	}

	var req CreateDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	day, err := h.programService.CreateDay(r.Context(), userID, weekID, req.DayNumber)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, day)
}

// UpdateDay handles PUT /days/{dayID}.
func (h *ProgramHandler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	userID, dayID, ok := requireUserAndPathUUID(w, r, "dayID")
	if !ok {
		return
	}

	var req UpdateDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	day := &domain.Day{
		ID:           dayID,
		Name:         req.Name,
		WeekDayIndex: req.WeekDayIndex,
		SleepQuality: req.SleepQuality,
		SleepTime:    req.SleepTime,
	}
	if err := h.programService.UpdateDay(r.Context(), userID, day); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, day)
}

// DeleteDay handles DELETE /days/{dayID}.
func (h *ProgramHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	userID, dayID, ok := requireUserAndPathUUID(w, r, "dayID")
	if !ok {
		return
	}

	if err := h.programService.DeleteDay(r.Context(), userID, dayID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateColumn handles POST /days/{dayID}/columns.
func (h *ProgramHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	userID, dayID, ok := requireUserAndPathUUID(w, r, "dayID")
	if !ok {
		return
	}

	var req CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	column, err := h.programService.CreateColumn(r.Context(), userID, dayID, req.Label, req.Order)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, column)
}

// UpdateColumn handles PUT /columns/{columnID}.
func (h *ProgramHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	userID, columnID, ok := requireUserAndPathUUID(w, r, "columnID")
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	column := &domain.DayColumn{
		ID:    columnID,
		Label: req.Label,
		Order: req.Order,
	}
	if err := h.programService.UpdateColumn(r.Context(), userID, column); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, column)
}

// DeleteColumn handles DELETE /columns/{columnID}.
func (h *ProgramHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	userID, columnID, ok := requireUserAndPathUUID(w, r, "columnID")
	if !ok {
		return
	}

	if err := h.programService.DeleteColumn(r.Context(), userID, columnID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateRow handles POST /days/{dayID}/rows.
func (h *ProgramHandler) CreateRow(w http.ResponseWriter, r *http.Request) {
	userID, dayID, ok := requireUserAndPathUUID(w, r, "dayID")
	if !ok {
		return
	}

	var req CreateRowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	row, err := h.programService.CreateRow(r.Context(), userID, dayID, req.Order, req.Cells)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, row)
}

// UpdateRow handles PUT /rows/{rowID}.
func (h *ProgramHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	userID, rowID, ok := requireUserAndPathUUID(w, r, "rowID")
	if !ok {
		return
	}

	var req UpdateRowRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	row := &domain.DayRow{
		ID:    rowID,
		Order: req.Order,
		Cells: req.Cells,
	}
	if err := h.programService.UpdateRow(r.Context(), userID, row); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// DeleteRow handles DELETE /rows/{rowID}.
func (h *ProgramHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	userID, rowID, ok := requireUserAndPathUUID(w, r, "rowID")
	if !ok {
		return
	}

	if err := h.programService.DeleteRow(r.Context(), userID, rowID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
