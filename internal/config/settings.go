package config

import (
	"errors"
	"os"
	"strings"
)

const (
	defaultModel = "gemini-3-flash-preview"
	defaultPort  = "8080"

	// undefinedCredential is what a build pipeline injects when the variable was never set.
	undefinedCredential = "undefined"
)

var ErrMissingCredential = errors.New("API_KEY is not configured")

type Settings struct {
	APIKey         string
	Model          string
	Port           string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	LambdaFunction string
}

// Load reads the service settings from the process environment.
func Load() Settings {
	return Settings{
		APIKey:         os.Getenv("API_KEY"),
		Model:          getenv("GEMINI_MODEL", defaultModel),
		Port:           getenv("PORT", defaultPort),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "json"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
		LambdaFunction: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
	}
}

// Credential returns the generative-AI API key, or ErrMissingCredential when
// it is absent or holds the "undefined" placeholder.
func (s Settings) Credential() (string, error) {
	key := strings.TrimSpace(s.APIKey)
	if key == "" || key == undefinedCredential {
		return "", ErrMissingCredential
	}
	return key, nil
}

func (s Settings) IsLambda() bool {
	return s.LambdaFunction != ""
}

func getenv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
