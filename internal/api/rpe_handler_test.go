package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRPEChart(t *testing.T) {
	t.Parallel()

	t.Run("estimates max and target load", func(t *testing.T) {
		t.Parallel()

		handler := NewRPEHandler(nil)

		// 100kg x 5 @ RPE 8 is 81.1% of max.
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/tools/rpe-chart", jsonBody(t, RPEChartRequest{
			KnownWeight: 100,
			KnownReps:   5,
			KnownRPE:    8,
			TargetReps:  3,
			TargetRPE:   9,
		}))
		handler.Chart(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp RPEChartResponse
		decodeResponse(t, w, &resp)
		assert.InDelta(t, 100/0.811, resp.OneRepMax, 0.001)
		assert.InDelta(t, resp.OneRepMax*0.892, resp.TargetLoad, 0.001)
		assert.NotEmpty(t, resp.Entries)
		for _, e := range resp.Entries {
			assert.Greater(t, e.Weight, 0.0)
		}
	})

	t.Run("rejects RPE outside the chart", func(t *testing.T) {
		t.Parallel()

		handler := NewRPEHandler(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/tools/rpe-chart", jsonBody(t, RPEChartRequest{
			KnownWeight: 100,
			KnownReps:   5,
			KnownRPE:    5,
			TargetReps:  3,
			TargetRPE:   9,
		}))
		handler.Chart(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects quarter-step RPE", func(t *testing.T) {
		t.Parallel()

		handler := NewRPEHandler(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/tools/rpe-chart", jsonBody(t, RPEChartRequest{
			KnownWeight: 100,
			KnownReps:   5,
			KnownRPE:    8.25,
			TargetReps:  3,
			TargetRPE:   9,
		}))
		handler.Chart(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
