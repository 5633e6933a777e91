package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	optionCount  = 4
	jsonFenceTag = "json"
)

// rawQuestion keeps pointers so absent fields can be told apart from zero values.
type rawQuestion struct {
	ID                 *int      `json:"id"`
	Text               *string   `json:"text"`
	Options            *[]string `json:"options"`
	CorrectAnswerIndex *int      `json:"correctAnswerIndex"`
	Explanation        *string   `json:"explanation"`
}

// ParseQuestions decodes the model output into questions and checks each one
// against the requested shape.
func ParseQuestions(raw string) ([]Question, error) {
	clean := stripCodeFence(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}

	var items []rawQuestion
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrMalformedResponse, clean)
	}
	if len(items) == 0 {
		return nil, ErrEmptyResponse
	}

	questions := make([]Question, 0, len(items))
	for i, item := range items {
		q, err := item.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedResponse, i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r rawQuestion) toQuestion() (Question, error) {
	switch {
	case r.ID == nil:
		return Question{}, fmt.Errorf("missing id")
	case r.Text == nil:
		return Question{}, fmt.Errorf("missing text")
	case r.Options == nil:
		return Question{}, fmt.Errorf("missing options")
	case r.CorrectAnswerIndex == nil:
		return Question{}, fmt.Errorf("missing correctAnswerIndex")
	case r.Explanation == nil:
		return Question{}, fmt.Errorf("missing explanation")
	}

	if n := len(*r.Options); n != optionCount {
		return Question{}, fmt.Errorf("expected %d options, got %d", optionCount, n)
	}
	if idx := *r.CorrectAnswerIndex; idx < 0 || idx >= optionCount {
		return Question{}, fmt.Errorf("correctAnswerIndex %d out of range", idx)
	}

	return Question{
		ID:                 *r.ID,
		Text:               *r.Text,
		Options:            *r.Options,
		CorrectAnswerIndex: *r.CorrectAnswerIndex,
		Explanation:        *r.Explanation,
	}, nil
}

func stripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(clean, "```"); ok {
		if len(rest) >= len(jsonFenceTag) && strings.EqualFold(rest[:len(jsonFenceTag)], jsonFenceTag) {
			rest = rest[len(jsonFenceTag):]
		}
		clean = rest
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
