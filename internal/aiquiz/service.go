package aiquiz

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	// GenerateQuestions returns the generated questions or a *GenerationError.
	GenerateQuestions(ctx context.Context, cfg QuizConfig) ([]Question, error)
	// AnalyzePerformance always returns displayable text.
	AnalyzePerformance(ctx context.Context, res PerformanceResult) string
}

type service struct {
	settings config.Settings
	provider Provider
}

// NewService builds the quiz service. provider may be nil when no credential
// is configured; it is never called in that case.
func NewService(settings config.Settings, provider Provider) Service {
	return &service{settings: settings, provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, cfg QuizConfig) ([]Question, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"generation_id": uuid.NewString(),
		"category":      cfg.Category,
		"topic":         cfg.Topic,
		"sub_topic":     cfg.SubTopic,
		"count":         cfg.QuestionCount,
	})

	if _, err := s.settings.Credential(); err != nil {
		log.Error("API_KEY not found. Set the API_KEY environment variable for this deployment.")
		return nil, newGenerationError(ErrMissingCredential)
	}
	if s.provider == nil {
		log.Error("[AIQUIZ] API_KEY is set but the Gemini provider is unavailable, see the startup logs")
		return nil, newGenerationError(ErrMissingCredential)
	}

	raw, err := s.provider.GenerateJSON(ctx, BuildQuestionsPrompt(cfg), QuestionsSchema())
	if err != nil {
		return nil, s.fail(log, classifyProviderError(err), err)
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		kind := ErrMalformedResponse
		if errors.Is(err, ErrEmptyResponse) {
			kind = ErrEmptyResponse
		}
		log = log.WithField("raw_response", raw)
		return nil, s.fail(log, kind, err)
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

func (s *service) fail(log *logrus.Entry, kind error, cause error) error {
	log.WithError(cause).WithField("kind", kind.Error()).Error("[AIQUIZ] Question generation failed")
	return newGenerationError(kind)
}

func classifyProviderError(err error) error {
	var authErr *AuthError
	var respErr *ResponseError
	var netErr *NetworkError

	switch {
	case errors.As(err, &authErr):
		return ErrAuthRejected
	case errors.As(err, &respErr), errors.As(err, &netErr):
		return ErrGenerationFailed
	default:
		return ErrGenerationFailed
	}
}

func (s *service) AnalyzePerformance(ctx context.Context, res PerformanceResult) string {
	log := config.WithContext(ctx).WithField("sub_topic", res.SubTopic)

	if _, err := s.settings.Credential(); err != nil {
		log.Warn("[AIQUIZ] API_KEY not configured, returning canned analysis")
		return fallbackNotConfigured
	}
	if s.provider == nil {
		log.Warn("[AIQUIZ] Gemini provider unavailable, returning canned analysis")
		return fallbackNotConfigured
	}

	text, err := s.provider.GenerateText(ctx, BuildAnalysisPrompt(res))
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Performance analysis failed, returning canned analysis")
		return fallbackFailed
	}

	if strings.TrimSpace(text) == "" {
		return fallbackEmpty
	}
	return text
}
