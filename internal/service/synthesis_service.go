package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"skillbridge/internal/ai"
	"skillbridge/internal/model"
)

// SynthesisResult is the tagged outcome of a profile synthesis call. Profile
// is always set: a failed or malformed generation yields the fallback
// profile with Fallback true and the reason recorded. The flow controller's
// terminal transition never depends on an error path.
type SynthesisResult struct {
	Profile  string
	Fallback bool
	Reason   string
}

// SynthesisService turns a completed answer ledger into an aptitude profile
// via the text-generation boundary. All transport and protocol failures are
// absorbed here and converted into the deterministic fallback profile.
type SynthesisService struct {
	generator ai.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewSynthesisService creates a new synthesis service. A nil generator means
// AI is disabled and every call returns the fallback profile.
func NewSynthesisService(generator ai.Generator, timeout time.Duration, logger *zap.Logger) *SynthesisService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SynthesisService{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// CreateProfile submits the serialized answer ledger and returns a profile
// whose first line is always a parseable tier label.
func (s *SynthesisService) CreateProfile(ctx context.Context, answersSnapshot, language string) SynthesisResult {
	if s.generator == nil {
		return s.fallback("ai disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildProfilePrompt(answersSnapshot, language)
	output, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return s.fallback(fmt.Sprintf("generation failed: %v", err))
	}

	if _, _, ok := model.ParseProfile(output); !ok {
		return s.fallback("malformed profile: missing tier label line")
	}

	return SynthesisResult{Profile: output}
}

func (s *SynthesisService) fallback(reason string) SynthesisResult {
	if s.logger != nil {
		s.logger.Warn("substituting fallback aptitude profile", zap.String("reason", reason))
	}
	return SynthesisResult{
		Profile:  model.FallbackProfile(),
		Fallback: true,
		Reason:   reason,
	}
}

func buildProfilePrompt(answersSnapshot, language string) string {
	return fmt.Sprintf(`You are an AI career coach specializing in creating empowering and encouraging aptitude profiles for rural youth and women in India.
Based on the user's responses from the 5-round assessment, create a detailed aptitude profile.

Your analysis MUST be in this language: %s.

The user's assessment data:
"%s"

Here is a guide to interpreting the data:
- Round 1 (Aptitude): Basic cognitive and logical skills.
- Round 2 (Digital Literacy): Familiarity with digital tools.
- Round 3 (Communication): Basic typing and self-expression.
- Round 4 (Career Preference): Work style and career preferences.
- Round 5 (Skill Challenge): Practical application of a preferred skill.

Your generated profile must have two parts:
1. Skill Level: start the entire profile with exactly one of these lines, followed by a newline: "Skill Level: Beginner", "Skill Level: Explorer", or "Skill Level: Ready".
   - "Beginner": the user is new to many concepts and needs foundational skills.
   - "Explorer": the user has some basic skills and is ready to explore specific paths.
   - "Ready": the user has good foundational skills and is ready for job-specific training.
2. Profile Summary: after the skill level, write a positive and encouraging summary.
   - Highlight strengths discovered from the career-preference and skill-challenge rounds.
   - Gently mention areas for growth based on aptitude and digital-literacy answers.
   - Recommend a primary career track (e.g., Digital Marketing, Online Selling, Data Entry, Graphic Design).
   - Keep the language simple, positive, and motivational.`, language, answersSnapshot)
}
