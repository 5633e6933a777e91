package aiquiz

import (
	"context"

	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, settings config.Settings) *AIQuizContainer {
	log := config.WithContext(ctx)

	var provider Provider
	if apiKey, err := settings.Credential(); err != nil {
		log.WithError(err).Warn("Gemini provider disabled: question generation will fail until API_KEY is set")
	} else if provider, err = NewGeminiProvider(ctx, apiKey, settings.Model); err != nil {
		log.WithError(err).Error("API_KEY is set but the Gemini provider could not be created")
	}

	service := NewService(settings, provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
