package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/service"
	"github.com/phrazzld/barbell-api/internal/store"
)

// programRouter mounts the handler on a chi router so path parameters
// resolve the same way they do in production.
func programRouter(handler *ProgramHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/programs", handler.CreateProgram)
	r.Get("/programs", handler.ListPrograms)
	r.Get("/programs/{programID}", handler.GetProgram)
	r.Put("/programs/{programID}", handler.RenameProgram)
	r.Delete("/programs/{programID}", handler.DeleteProgram)
	r.Post("/programs/{programID}/blocks", handler.CreateBlock)
	r.Put("/blocks/{blockID}", handler.UpdateBlock)
	r.Delete("/blocks/{blockID}", handler.DeleteBlock)
	r.Post("/days/{dayID}/rows", handler.CreateRow)
	return r
}

func TestCreateProgram(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates program", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{
			CreateProgramFn: func(ctx context.Context, uid uuid.UUID, name string) (*domain.Program, error) {
				assert.Equal(t, userID, uid)
				return &domain.Program{ID: uuid.New(), UserID: uid, Name: name}, nil
			},
		}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/programs", userID,
			jsonBody(t, CreateProgramRequest{Name: "Meet Prep"}))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp domain.Program
		decodeResponse(t, w, &resp)
		assert.Equal(t, "Meet Prep", resp.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPost, "/programs", userID,
			jsonBody(t, CreateProgramRequest{Name: ""}))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/programs", jsonBody(t, CreateProgramRequest{Name: "x"}))
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListPrograms(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

	w := httptest.NewRecorder()
	r := authedRequest(t, http.MethodGet, "/programs", userID, nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String(), "empty list serializes as [], not null")
}

func TestGetProgram(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	programID := uuid.New()

	t.Run("another user's program reads as not found", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{
			GetProgramFn: func(ctx context.Context, uid, pid uuid.UUID) (*domain.Program, error) {
				return nil, service.ErrNotOwned
			},
		}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/programs/"+programID.String(), userID, nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing program", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/programs/"+programID.String(), userID, nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed program ID", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/programs/not-a-uuid", userID, nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateBlock(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	blockID := uuid.New()

	var gotBlock *domain.Block
	router := programRouter(NewProgramHandler(&mockProgramService{
		UpdateBlockFn: func(ctx context.Context, uid uuid.UUID, block *domain.Block) error {
			gotBlock = block
			return nil
		},
	}, nil))

	w := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPut, "/blocks/"+blockID.String(), userID,
		jsonBody(t, UpdateBlockRequest{Name: "Peaking", Order: 2}))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, blockID, gotBlock.ID)
	assert.Equal(t, "Peaking", gotBlock.Name)
	assert.Equal(t, 2, gotBlock.Order)
}

func TestDeleteProgram(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	programID := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodDelete, "/programs/"+programID.String(), userID, nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		t.Parallel()

		router := programRouter(NewProgramHandler(&mockProgramService{
			DeleteProgramFn: func(ctx context.Context, uid, pid uuid.UUID) error {
				return service.NewProgramServiceError("delete_program", "failed to delete program", assert.AnError)
			},
		}, nil))

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodDelete, "/programs/"+programID.String(), userID, nil)
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateRow(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	dayID := uuid.New()
	columnID := uuid.New()

	var gotCells map[uuid.UUID]string
	router := programRouter(NewProgramHandler(&mockProgramService{
		CreateRowFn: func(ctx context.Context, uid, did uuid.UUID, order int, cells map[uuid.UUID]string) (*domain.DayRow, error) {
			assert.Equal(t, dayID, did)
			gotCells = cells
			return &domain.DayRow{ID: uuid.New(), DayID: did, Order: order, Cells: cells}, nil
		},
	}, nil))

	w := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/days/"+dayID.String()+"/rows", userID,
		jsonBody(t, CreateRowRequest{Order: 0, Cells: map[uuid.UUID]string{columnID: "Squat"}}))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Squat", gotCells[columnID])
}

func TestCreateBlockWrapsNotFoundParent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	programID := uuid.New()

	router := programRouter(NewProgramHandler(&mockProgramService{
		CreateBlockFn: func(ctx context.Context, uid, pid uuid.UUID, name string, order int) (*domain.Block, error) {
			return nil, store.ErrProgramNotFound
		},
	}, nil))

	w := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/programs/"+programID.String()+"/blocks", userID,
		jsonBody(t, CreateBlockRequest{Name: "Volume", Order: 0}))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
