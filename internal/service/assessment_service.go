package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"skillbridge/internal/cache"
	"skillbridge/internal/catalog"
	"skillbridge/internal/model"
	"skillbridge/internal/repository"
)

var (
	// ErrNoActiveFlow is returned when an answer arrives for a user with no
	// assessment in progress.
	ErrNoActiveFlow = errors.New("no assessment in progress")
	// ErrSessionInvalid means the user record disappeared mid-flow; the
	// persistence write is skipped rather than recreating the record.
	ErrSessionInvalid = errors.New("user session is no longer valid")
	// ErrProfileNotReady is returned when a result is requested before any
	// profile has been persisted.
	ErrProfileNotReady = errors.New("aptitude profile not ready")
	// ErrPersistenceFailed means the profile could not be stored even after
	// a retry. This is the one failure class surfaced to the user; the
	// synthesized profile is kept so a later attempt commits it unchanged.
	ErrPersistenceFailed = errors.New("could not save aptitude profile")
)

// AssessmentService drives the adaptive assessment flow: it walks the
// catalog sequence, records answers, splices conditional questions, and on
// completion runs synthesis and the persistence gate.
type AssessmentService struct {
	catalogSvc *CatalogService
	synthesis  *SynthesisService
	userRepo   repository.UserRepo
	flowCache  cache.FlowCache
	insights   cache.InsightCache
	logger     *zap.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	catalogSvc *CatalogService,
	synthesis *SynthesisService,
	userRepo repository.UserRepo,
	flowCache cache.FlowCache,
	insights cache.InsightCache,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		catalogSvc: catalogSvc,
		synthesis:  synthesis,
		userRepo:   userRepo,
		flowCache:  flowCache,
		insights:   insights,
		logger:     logger,
	}
}

// CurrentQuestion returns the question at the cursor, starting a new flow if
// none is in progress. A flow stuck in submitting (a previous persistence
// failure) re-attempts completion here, which is the retry affordance.
func (s *AssessmentService) CurrentQuestion(ctx context.Context, userID, language string) (*model.AssessmentState, error) {
	state, err := s.flowCache.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load flow state: %w", err)
	}

	if state == nil {
		sequence, err := s.catalogSvc.Sequence(ctx, language)
		if err != nil {
			// Recoverable: the client shows a retry affordance and the next
			// request re-fetches the catalog.
			return &model.AssessmentState{Status: model.FlowFailed}, nil
		}
		state = model.NewFlowState(sequence, NormalizeLanguage(language))
		if err := s.flowCache.Set(ctx, userID, state); err != nil {
			return nil, fmt.Errorf("store flow state: %w", err)
		}
	}

	if state.Status == model.FlowSubmitting {
		if err := s.complete(ctx, userID, state); err != nil {
			return nil, err
		}
	}

	return s.stateView(state), nil
}

// SubmitAnswer records one answer and advances the flow. Reaching the end of
// the effective sequence triggers synthesis and the persistence gate before
// the call returns; the flow always ends complete with exactly one persisted
// profile unless persistence itself fails after retry.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, userID string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	state, err := s.flowCache.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load flow state: %w", err)
	}
	if state == nil {
		return nil, ErrNoActiveFlow
	}

	var conditional *model.Question
	if current := state.Current(); current != nil && current.ID == catalog.BranchQuestionID {
		conditional = catalog.ConditionalFor(state.Language, req.Answer)
	}

	switch err := state.Advance(req.QuestionID, req.Answer, conditional); {
	case errors.Is(err, model.ErrStaleAnswer):
		// Duplicate submit event from a re-render: the answer is already
		// recorded, return the current position unchanged.
		return s.submitView(state), nil
	case errors.Is(err, model.ErrFlowClosed):
		return nil, err
	case err != nil:
		return nil, err
	}

	if err := s.flowCache.Set(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("store flow state: %w", err)
	}

	if state.Status == model.FlowSubmitting {
		if err := s.complete(ctx, userID, state); err != nil {
			return nil, err
		}
	}

	return s.submitView(state), nil
}

// Result returns the persisted profile, parsed for display.
func (s *AssessmentService) Result(ctx context.Context, userID string) (*model.ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionInvalid
	}
	if !user.HasProfile() {
		return nil, ErrProfileNotReady
	}

	view := &model.ProfileView{Profile: user.AptitudeProfile}
	if tier, narrative, ok := model.ParseProfile(user.AptitudeProfile); ok {
		view.SkillLevel = "Skill Level: " + string(tier)
		view.Summary = narrative
	} else {
		// Legacy or hand-written profiles without a tier line are shown verbatim.
		view.Summary = user.AptitudeProfile
	}
	return view, nil
}

// complete runs the one-shot submission stage: synthesize once, persist with
// one retry, then mark the flow complete. Synthesis cannot fail (fallback
// substitution happens inside the boundary); persistence is the only step
// allowed to surface an error.
func (s *AssessmentService) complete(ctx context.Context, userID string, state *model.FlowState) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if user == nil {
		// Session ended mid-submission: drop the flow, never write.
		if err := s.flowCache.Delete(ctx, userID); err != nil && s.logger != nil {
			s.logger.Warn("drop orphaned flow state", zap.String("userId", userID), zap.Error(err))
		}
		return ErrSessionInvalid
	}

	if state.PendingProfile == "" {
		snapshot := state.Ledger.Snapshot(state.Sequence, state.Language)
		result := s.synthesis.CreateProfile(ctx, snapshot, state.Language)
		state.PendingProfile = result.Profile
		if err := s.flowCache.Set(ctx, userID, state); err != nil {
			return fmt.Errorf("store flow state: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("aptitude profile synthesized",
				zap.String("userId", userID),
				zap.Bool("fallback", result.Fallback),
				zap.Int("answers", len(state.Ledger)))
		}
	}

	if err := s.userRepo.UpsertProfile(ctx, userID, state.PendingProfile); err != nil {
		if s.logger != nil {
			s.logger.Warn("profile persistence failed, retrying once",
				zap.String("userId", userID), zap.Error(err))
		}
		if err := s.userRepo.UpsertProfile(ctx, userID, state.PendingProfile); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
	}

	state.Status = model.FlowComplete
	if err := s.flowCache.Set(ctx, userID, state); err != nil && s.logger != nil {
		// The profile is durably stored; a stale cached status only costs an
		// extra idempotent upsert on the next request.
		s.logger.Warn("store completed flow state", zap.String("userId", userID), zap.Error(err))
	}

	if err := s.insights.Invalidate(ctx, userID); err != nil && s.logger != nil {
		s.logger.Warn("invalidate insight cache", zap.String("userId", userID), zap.Error(err))
	}

	return nil
}

func (s *AssessmentService) stateView(state *model.FlowState) *model.AssessmentState {
	return &model.AssessmentState{
		Status:   state.Status,
		Done:     state.Status == model.FlowComplete,
		Progress: state.Progress(),
		Question: state.Current(),
	}
}

func (s *AssessmentService) submitView(state *model.FlowState) *model.SubmitAnswerResponse {
	return &model.SubmitAnswerResponse{
		Status:   state.Status,
		Done:     state.Status == model.FlowComplete,
		Progress: state.Progress(),
		Next:     state.Current(),
	}
}
