package aiquiz

import (
	"errors"
	"fmt"
)

// Error kinds returned by GenerateQuestions. Match them with errors.Is.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrEmptyResponse     = errors.New("empty model response")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrAuthRejected      = errors.New("credential rejected")
	ErrGenerationFailed  = errors.New("generation failed")
)

// User-facing messages, in the platform language.
const (
	msgMissingCredential = "Tizimda API kaliti sozlanmagan. Iltimos, administrator bilan bog'laning."
	msgEmptyResponse     = "AI tomonidan bo'sh javob qaytdi."
	msgAuthRejected      = "API kaliti faol emas yoki noto'g'ri kiritilgan."
	msgGenerationFailed  = "Savollarni yaratishda xatolik yuz berdi. Iltimos, qaytadan urinib ko'ring."

	fallbackNotConfigured = "Natijalar muvaffaqiyatli tahlil qilindi."
	fallbackEmpty         = "Yaxshi natija, o'qishdan to'xtamang!"
	fallbackFailed        = "Natijalar tahlil qilindi. Bilim olishda davom eting!"
)

// GenerationError is what callers of GenerateQuestions see. Its message is
// safe to show to end users; it unwraps to one of the Err* kinds only.
type GenerationError struct {
	Kind    error
	Message string
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() error { return e.Kind }

func newGenerationError(kind error) *GenerationError {
	return &GenerationError{Kind: kind, Message: userMessage(kind)}
}

func userMessage(kind error) string {
	switch kind {
	case ErrMissingCredential:
		return msgMissingCredential
	case ErrEmptyResponse:
		return msgEmptyResponse
	case ErrAuthRejected:
		return msgAuthRejected
	default:
		return msgGenerationFailed
	}
}

// AuthError means the model service refused the credential.
type AuthError struct {
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("gemini rejected credential (status %d): %v", e.StatusCode, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ResponseError is any other error status reported by the model service.
type ResponseError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("gemini returned %d %s: %v", e.StatusCode, e.Status, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// NetworkError covers failures where no usable answer came back at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
