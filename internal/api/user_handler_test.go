package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/service"
)

func TestGetProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns profile without credentials", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mockUserService{
			GetUserFn: func(ctx context.Context, uid uuid.UUID) (*domain.User, error) {
				return &domain.User{
					ID:             uid,
					Email:          "lifter@example.com",
					HashedPassword: "$2a$10$secret",
					DisplayName:    "Sam",
					PBSquatGym:     floatPtr(200),
				}, nil
			},
		}, nil)

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodGet, "/api/me", userID, nil)
		handler.GetProfile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "$2a$10$secret",
			"password hash must never serialize")

		var resp domain.User
		decodeResponse(t, w, &resp)
		assert.Equal(t, "Sam", resp.DisplayName)
		assert.Equal(t, 200.0, *resp.PBSquatGym)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mockUserService{}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		handler.GetProfile(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfileEndpoint(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("passes full profile state through", func(t *testing.T) {
		t.Parallel()

		var gotUpdate service.ProfileUpdate
		handler := NewUserHandler(&mockUserService{
			UpdateProfileFn: func(ctx context.Context, uid uuid.UUID, update service.ProfileUpdate) (*domain.User, error) {
				gotUpdate = update
				return &domain.User{ID: uid, DisplayName: update.DisplayName}, nil
			},
		}, nil)

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPut, "/api/me", userID, jsonBody(t, UpdateProfileRequest{
			DisplayName: "Sam",
			PBSquatGym:  floatPtr(205),
		}))
		handler.UpdateProfile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Sam", gotUpdate.DisplayName)
		assert.Equal(t, 205.0, *gotUpdate.PBSquatGym)
		assert.Nil(t, gotUpdate.PBBenchGym, "omitted bests clear")
	})

	t.Run("rejects negative personal best", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(&mockUserService{}, nil)

		w := httptest.NewRecorder()
		r := authedRequest(t, http.MethodPut, "/api/me", userID, jsonBody(t, UpdateProfileRequest{
			PBSquatGym: floatPtr(-10),
		}))
		handler.UpdateProfile(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	var deleted uuid.UUID
	handler := NewUserHandler(&mockUserService{
		DeleteUserFn: func(ctx context.Context, uid uuid.UUID) error {
			deleted = uid
			return nil
		},
	}, nil)

	w := httptest.NewRecorder()
	r := authedRequest(t, http.MethodDelete, "/api/me", userID, nil)
	handler.DeleteAccount(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, userID, deleted)
}
