package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"skillbridge/internal/catalog"
	"skillbridge/internal/model"
	"skillbridge/internal/repository"
)

// ErrCatalogUnavailable means no question sequence could be produced for any
// language. The flow surfaces this as a recoverable failure with a retry
// affordance rather than submitting an empty ledger.
var ErrCatalogUnavailable = errors.New("assessment catalog unavailable")

// CatalogService supplies the effective question catalog. Seeded questions in
// Mongo take precedence; the built-in catalog is the fallback so a cold or
// unreachable store never blocks the assessment.
type CatalogService struct {
	questionRepo repository.QuestionRepo
	logger       *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(questionRepo repository.QuestionRepo, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// Sequence returns the ordered base question list for a language. Unknown
// languages fall back to the default language deterministically.
func (s *CatalogService) Sequence(ctx context.Context, language string) ([]model.Question, error) {
	language = NormalizeLanguage(language)

	if s.questionRepo != nil {
		stored, err := s.questionRepo.ListByLanguage(ctx, language)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("question store unavailable, using built-in catalog",
					zap.String("language", language), zap.Error(err))
			}
		} else if len(stored) > 0 {
			for i := range stored {
				stored[i].ID = stored[i].ResolveID(i)
			}
			return stored, nil
		}
	}

	builtin := catalog.BaseSequence(language)
	if len(builtin) == 0 {
		return nil, ErrCatalogUnavailable
	}
	return builtin, nil
}

// NormalizeLanguage maps unknown language codes to the default language.
func NormalizeLanguage(language string) string {
	for _, l := range catalog.Languages() {
		if l == language {
			return language
		}
	}
	return catalog.DefaultLanguage
}
