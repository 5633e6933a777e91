package container

import (
	"context"

	"github.com/saulo-duarte/chronos-aiquiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
)

type Container struct {
	Settings        config.Settings
	AIQuizContainer *aiquiz.AIQuizContainer
}

func New(ctx context.Context) *Container {
	settings := config.Load()
	config.InitLogger(settings)

	return &Container{
		Settings:        settings,
		AIQuizContainer: aiquiz.NewAIQuizContainer(ctx, settings),
	}
}
