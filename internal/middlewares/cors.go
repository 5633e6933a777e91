package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows the configured origins to call the API. A "*" entry allows any origin.
func Cors(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         300,
	})
}
