package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"skillbridge/internal/model"
	"skillbridge/internal/service"
	"skillbridge/internal/transport/rest/middleware"
)

// AssessmentHandler handles assessment flow endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	logger        *zap.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc, logger: logger}
}

// Current handles GET /v1/assessment/current
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	language := r.URL.Query().Get("lang")
	if language == "" {
		language = middleware.GetLanguage(r.Context())
	}

	state, err := h.assessmentSvc.CurrentQuestion(r.Context(), userID, language)
	if err != nil {
		h.writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SubmitAnswer handles POST /v1/assessment/answers
func (h *AssessmentHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.assessmentSvc.SubmitAnswer(r.Context(), userID, &req)
	if err != nil {
		h.writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Result handles GET /v1/assessment/result
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	view, err := h.assessmentSvc.Result(r.Context(), userID)
	if err != nil {
		h.writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *AssessmentHandler) writeAssessmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveFlow):
		writeError(w, http.StatusNotFound, service.ErrNoActiveFlow.Error())
	case errors.Is(err, model.ErrFlowClosed):
		writeError(w, http.StatusConflict, model.ErrFlowClosed.Error())
	case errors.Is(err, service.ErrProfileNotReady):
		writeError(w, http.StatusNotFound, service.ErrProfileNotReady.Error())
	case errors.Is(err, service.ErrSessionInvalid):
		writeError(w, http.StatusUnauthorized, service.ErrSessionInvalid.Error())
	case errors.Is(err, service.ErrPersistenceFailed):
		// Retryable: the synthesized profile is retained server-side.
		writeError(w, http.StatusServiceUnavailable, service.ErrPersistenceFailed.Error())
	default:
		if h.logger != nil {
			h.logger.Error("assessment request failed", zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
