package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skillbridge/internal/model"
	"skillbridge/internal/service"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestWriteAssessmentErrorMapping(t *testing.T) {
	h := NewAssessmentHandler(nil, zap.NewNop())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"no active flow", service.ErrNoActiveFlow, http.StatusNotFound, service.ErrNoActiveFlow.Error()},
		{"flow closed", model.ErrFlowClosed, http.StatusConflict, model.ErrFlowClosed.Error()},
		{"profile not ready", service.ErrProfileNotReady, http.StatusNotFound, service.ErrProfileNotReady.Error()},
		{"session invalid", service.ErrSessionInvalid, http.StatusUnauthorized, service.ErrSessionInvalid.Error()},
		{"persistence failed", service.ErrPersistenceFailed, http.StatusServiceUnavailable, service.ErrPersistenceFailed.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeAssessmentError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeErrorBody(t, rec))
		})
	}
}

func TestWriteAssessmentErrorHidesWrappedDetail(t *testing.T) {
	h := NewAssessmentHandler(nil, zap.NewNop())

	// A wrapped persistence error must surface only the sentinel message,
	// never the underlying store error text.
	wrapped := fmt.Errorf("%w: connection reset by mongodb://internal-host:27017", service.ErrPersistenceFailed)
	rec := httptest.NewRecorder()
	h.writeAssessmentError(rec, wrapped)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, service.ErrPersistenceFailed.Error(), decodeErrorBody(t, rec))

	rec = httptest.NewRecorder()
	h.writeAssessmentError(rec, errors.New("dial tcp 10.0.0.5:6379: i/o timeout"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "something went wrong", body)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestWriteInsightErrorHidesDetail(t *testing.T) {
	h := NewInsightsHandler(nil, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.writeInsightError(rec, errors.New("mongo: server selection timeout"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "something went wrong", decodeErrorBody(t, rec))

	rec = httptest.NewRecorder()
	h.writeInsightError(rec, service.ErrProfileNotReady)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "complete the assessment first", decodeErrorBody(t, rec))
}
