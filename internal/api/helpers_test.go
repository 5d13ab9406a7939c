package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/barbell-api/internal/api/shared"
	"github.com/phrazzld/barbell-api/internal/config"
	"github.com/phrazzld/barbell-api/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-key-thirty-two-chars-min",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	})
	require.NoError(t, err)
	return svc
}

// jsonBody marshals v into a request body reader.
func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// authedRequest builds a request carrying the user ID in its context, the
// way the auth middleware does for protected routes.
func authedRequest(t *testing.T, method, target string, userID uuid.UUID, body io.Reader) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// decodeResponse unmarshals the recorded response body into v.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
