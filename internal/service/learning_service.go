package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"skillbridge/internal/ai"
	"skillbridge/internal/cache"
	"skillbridge/internal/model"
	"skillbridge/internal/repository"
)

// LearningService recommends learning modules for a persisted profile from
// the static course catalog.
type LearningService struct {
	generator ai.Generator
	userRepo  repository.UserRepo
	insights  cache.InsightCache
	timeout   time.Duration
	logger    *zap.Logger
}

// NewLearningService creates a new learning service
func NewLearningService(generator ai.Generator, userRepo repository.UserRepo, insights cache.InsightCache, timeout time.Duration, logger *zap.Logger) *LearningService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LearningService{
		generator: generator,
		userRepo:  userRepo,
		insights:  insights,
		timeout:   timeout,
		logger:    logger,
	}
}

// Modules returns the static course catalog.
func (s *LearningService) Modules() []model.LearningModule {
	modules := make([]model.LearningModule, len(allModules))
	copy(modules, allModules)
	return modules
}

// Path returns up to four recommended modules for the user's profile.
func (s *LearningService) Path(ctx context.Context, userID string) (*model.LearningPath, error) {
	if cached, err := s.insights.GetLearningPath(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

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

	path := s.generate(ctx, user.AptitudeProfile)

	if err := s.insights.SetLearningPath(ctx, userID, path); err != nil && s.logger != nil {
		s.logger.Warn("cache learning path", zap.String("userId", userID), zap.Error(err))
	}

	return path, nil
}

func (s *LearningService) generate(ctx context.Context, profile string) *model.LearningPath {
	if s.generator == nil {
		return defaultLearningPath()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	output, err := s.generator.GenerateText(ctx, buildLearningPrompt(profile, allModules))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("learning path generation failed, using defaults", zap.Error(err))
		}
		return defaultLearningPath()
	}

	var path model.LearningPath
	if err := json.Unmarshal([]byte(stripCodeFences(output)), &path); err != nil {
		if s.logger != nil {
			s.logger.Warn("learning path returned malformed JSON, using defaults", zap.Error(err))
		}
		return defaultLearningPath()
	}
	if len(path.RecommendedModules) == 0 {
		return defaultLearningPath()
	}
	if len(path.RecommendedModules) > 4 {
		path.RecommendedModules = path.RecommendedModules[:4]
	}

	return &path
}

func buildLearningPrompt(profile string, modules []model.LearningModule) string {
	var titles strings.Builder
	for _, m := range modules {
		fmt.Fprintf(&titles, "- %s\n", m.Title)
	}

	return fmt.Sprintf(`You are an AI career coach. Recommend a personalized learning path for a user based on their aptitude profile and the available learning modules.
Select up to 4 of the most relevant modules from the available list and provide a short, encouraging reason for each recommendation.

User's Aptitude Profile:
"%s"

Available Learning Modules:
%s
Respond with ONLY a JSON object: {"recommendedModules": [{"title": "...", "reason": "..."}]}. Titles must come from the available list. Your recommendations should help the user build on their strengths and address areas for development identified in the profile.`, profile, titles.String())
}

func defaultLearningPath() *model.LearningPath {
	return &model.LearningPath{
		RecommendedModules: []model.RecommendedModule{
			{Title: "Digital Literacy Basics", Reason: "A strong foundation in everyday digital tools opens every other path."},
			{Title: "Effective Communication", Reason: "Clear communication helps in any role, from selling to teaching."},
		},
	}
}

var allModules = []model.LearningModule{
	{Title: "Digital Literacy Basics", Description: "Using smartphones, browsers, email, and common apps with confidence."},
	{Title: "Financial Management", Description: "Budgeting, UPI payments, and simple bookkeeping for a small business."},
	{Title: "Effective Communication", Description: "Speaking and writing clearly for customers, students, and employers."},
	{Title: "Vocational Skills: Tailoring", Description: "Measuring, cutting, and stitching garments for local orders."},
}
