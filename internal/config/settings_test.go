package config_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_KEY", "")
		t.Setenv("GEMINI_MODEL", "")
		t.Setenv("PORT", "")
		t.Setenv("ALLOWED_ORIGINS", "")
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

		s := config.Load()

		assert.Equal(t, "gemini-3-flash-preview", s.Model)
		assert.Equal(t, "8080", s.Port)
		assert.Equal(t, []string{"*"}, s.AllowedOrigins)
		assert.False(t, s.IsLambda())
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("API_KEY", "secret")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
		t.Setenv("PORT", "9000")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "aiquiz")

		s := config.Load()

		assert.Equal(t, "secret", s.APIKey)
		assert.Equal(t, "gemini-2.5-flash", s.Model)
		assert.Equal(t, "9000", s.Port)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.AllowedOrigins)
		assert.True(t, s.IsLambda())
	})
}

func TestCredential(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		want    string
		wantErr bool
	}{
		{name: "Missing", apiKey: "", wantErr: true},
		{name: "Blank", apiKey: "   ", wantErr: true},
		{name: "UndefinedPlaceholder", apiKey: "undefined", wantErr: true},
		{name: "Valid", apiKey: "AIza-test", want: "AIza-test"},
		{name: "TrimmedValid", apiKey: " AIza-test\n", want: "AIza-test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Settings{APIKey: tt.apiKey}.Credential()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrMissingCredential)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	config.InitLogger(config.Settings{LogLevel: "debug", LogFormat: "json"})
	config.Logger.SetOutput(&buf)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	config.WithContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Equal(t, logrus.DebugLevel, config.Logger.GetLevel())
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	config.Error(rec, http.StatusBadGateway, "boom")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
