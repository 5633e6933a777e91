package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/chronos-aiquiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
	"github.com/saulo-duarte/chronos-aiquiz/internal/middlewares"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	return r
}
