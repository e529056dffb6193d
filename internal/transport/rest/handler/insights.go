package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"skillbridge/internal/model"
	"skillbridge/internal/service"
	"skillbridge/internal/transport/rest/middleware"
)

// InsightsHandler handles profile-derived recommendation endpoints
type InsightsHandler struct {
	jobSvc      *service.JobService
	learningSvc *service.LearningService
	logger      *zap.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(jobSvc *service.JobService, learningSvc *service.LearningService, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{
		jobSvc:      jobSvc,
		learningSvc: learningSvc,
		logger:      logger,
	}
}

// JobMatches handles GET /v1/jobs/matches
func (h *InsightsHandler) JobMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	matches, err := h.jobSvc.Matches(r.Context(), userID)
	if err != nil {
		h.writeInsightError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

// JobDescription handles POST /v1/jobs/description
func (h *InsightsHandler) JobDescription(w http.ResponseWriter, r *http.Request) {
	var req model.JobDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "job title is required")
		return
	}

	writeJSON(w, http.StatusOK, h.jobSvc.Description(r.Context(), &req))
}

// LearningPath handles GET /v1/learning/path
func (h *InsightsHandler) LearningPath(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	path, err := h.learningSvc.Path(r.Context(), userID)
	if err != nil {
		h.writeInsightError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, path)
}

// LearningModules handles GET /v1/learning/modules
func (h *InsightsHandler) LearningModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.learningSvc.Modules())
}

func (h *InsightsHandler) writeInsightError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotReady):
		writeError(w, http.StatusNotFound, "complete the assessment first")
	case errors.Is(err, service.ErrSessionInvalid):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		if h.logger != nil {
			h.logger.Error("insight request failed", zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
