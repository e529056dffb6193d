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

// JobService maps a persisted aptitude profile to job opportunities. The
// profile is treated as immutable plain text input; results are cached per
// user and fall back to a deterministic starter list when generation fails.
type JobService struct {
	generator ai.Generator
	userRepo  repository.UserRepo
	insights  cache.InsightCache
	timeout   time.Duration
	logger    *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(generator ai.Generator, userRepo repository.UserRepo, insights cache.InsightCache, timeout time.Duration, logger *zap.Logger) *JobService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &JobService{
		generator: generator,
		userRepo:  userRepo,
		insights:  insights,
		timeout:   timeout,
		logger:    logger,
	}
}

// Matches returns job opportunities for the user's persisted profile.
func (s *JobService) Matches(ctx context.Context, userID string) (*model.JobMatches, error) {
	if cached, err := s.insights.GetJobMatches(ctx, userID); err == nil && cached != nil {
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

	matches := s.generate(ctx, user.AptitudeProfile)

	if err := s.insights.SetJobMatches(ctx, userID, matches); err != nil && s.logger != nil {
		s.logger.Warn("cache job matches", zap.String("userId", userID), zap.Error(err))
	}

	return matches, nil
}

func (s *JobService) generate(ctx context.Context, profile string) *model.JobMatches {
	if s.generator == nil {
		return defaultJobMatches()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	output, err := s.generator.GenerateText(ctx, buildJobPrompt(profile))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("job mapping failed, using starter list", zap.Error(err))
		}
		return defaultJobMatches()
	}

	var matches model.JobMatches
	if err := json.Unmarshal([]byte(stripCodeFences(output)), &matches); err != nil {
		if s.logger != nil {
			s.logger.Warn("job mapping returned malformed JSON, using starter list", zap.Error(err))
		}
		return defaultJobMatches()
	}
	if len(matches.LocalOpportunities) == 0 && len(matches.RemoteOpportunities) == 0 {
		return defaultJobMatches()
	}

	return &matches
}

// Description expands a short job listing into a detailed description when
// the user opens a listing to apply. Results are not cached: listings are
// expanded on demand, and any failure falls back to the short description.
func (s *JobService) Description(ctx context.Context, req *model.JobDescriptionRequest) *model.JobDescription {
	if s.generator == nil {
		return descriptionFallback(req)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	output, err := s.generator.GenerateText(ctx, buildDescriptionPrompt(req.Title))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("job description generation failed, using listing text", zap.Error(err))
		}
		return descriptionFallback(req)
	}

	return &model.JobDescription{JobDescription: strings.TrimSpace(output)}
}

// Framing sent with every description request, matching the audience the
// listings are curated for.
const (
	jobIndustryTrends = "Current trends in the digital economy and local manufacturing."
	jobRequiredSkills = "Based on user aptitude profile, focus on digital literacy, communication, and basic vocational skills."
)

func buildDescriptionPrompt(title string) string {
	return fmt.Sprintf(`You are an expert HR specialist. Generate a job description based on the following information:

Job Title: %s
Industry Trends: %s
Required Skills: %s

Write a detailed and engaging job description that attracts qualified candidates.`, title, jobIndustryTrends, jobRequiredSkills)
}

func descriptionFallback(req *model.JobDescriptionRequest) *model.JobDescription {
	return &model.JobDescription{
		JobDescription: strings.TrimSpace(req.Description + "\n\n(Could not load full description.)"),
	}
}

func buildJobPrompt(profile string) string {
	return fmt.Sprintf(`You are an AI job matching expert. Given the following aptitude profile, identify relevant job opportunities, both local and remote.

Aptitude Profile: %s

Respond with ONLY a JSON object with two keys: localOpportunities and remoteOpportunities. Each key is an array of job objects with the fields title, company, location (local only), and description.`, profile)
}

func defaultJobMatches() *model.JobMatches {
	return &model.JobMatches{
		LocalOpportunities: []model.JobOpportunity{
			{Title: "Data Entry Operator", Company: "Local Business Center", Location: "Your district", Description: "Enter and verify shop records using spreadsheets."},
			{Title: "Retail Assistant", Company: "Community Store", Location: "Your district", Description: "Help customers and manage billing at a local store."},
		},
		RemoteOpportunities: []model.JobOpportunity{
			{Title: "Online Tutor", Company: "EdReach", Description: "Teach school subjects to students over video calls."},
			{Title: "Social Media Assistant", Company: "GrowDigital", Description: "Create simple posts and replies for small businesses."},
		},
	}
}

// stripCodeFences removes a surrounding markdown code fence that models
// sometimes wrap around JSON output.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
