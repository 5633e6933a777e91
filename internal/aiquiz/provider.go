package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	// GenerateJSON asks the model for a JSON document conforming to schema.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// GenerateText asks the model for free text.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return p.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   schema,
	})
}

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt, nil)
}

func (p *geminiProvider) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)
	log.Debugf("[AIQUIZ] Sending prompt (%d bytes) to Gemini", len(prompt))

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", classifyError(err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Gemini raw response:\n%s", raw)
	return raw, nil
}

// classifyError turns a genai client error into AuthError, ResponseError or NetworkError.
func classifyError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			if mentionsAPIKey(err.Error()) {
				return &AuthError{Err: err}
			}
			return &NetworkError{Err: err}
		}
		apiErr = *apiErrPtr
	}

	if isAuthFailure(apiErr) {
		return &AuthError{StatusCode: apiErr.Code, Err: err}
	}
	return &ResponseError{StatusCode: apiErr.Code, Status: apiErr.Status, Err: err}
}

// Gemini reports a bad key as 400 INVALID_ARGUMENT with an "API key" message
// and a disabled or restricted key as 403. Any status mentioning the key counts.
func isAuthFailure(apiErr genai.APIError) bool {
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	switch apiErr.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return true
	}
	return mentionsAPIKey(apiErr.Message)
}

func mentionsAPIKey(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "api key")
}
