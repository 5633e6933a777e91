package aiquiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-aiquiz/internal/aiquiz"
)

func TestParseQuestions(t *testing.T) {
	t.Run("PlainArray", func(t *testing.T) {
		questions, err := aiquiz.ParseQuestions(sampleResponse)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, 1, questions[0].CorrectAnswerIndex)
	})

	t.Run("CodeFence", func(t *testing.T) {
		questions, err := aiquiz.ParseQuestions("```json\n" + sampleResponse + "\n```")

		require.NoError(t, err)
		assert.Len(t, questions, 1)
	})

	t.Run("UppercaseCodeFence", func(t *testing.T) {
		questions, err := aiquiz.ParseQuestions("```JSON\n" + sampleResponse + "\n```")

		require.NoError(t, err)
		assert.Len(t, questions, 1)
	})

	t.Run("BareCodeFence", func(t *testing.T) {
		questions, err := aiquiz.ParseQuestions("```\n" + sampleResponse + "\n```")

		require.NoError(t, err)
		assert.Len(t, questions, 1)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		questions, err := aiquiz.ParseQuestions("[]")

		assert.ErrorIs(t, err, aiquiz.ErrEmptyResponse)
		assert.Nil(t, questions)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := aiquiz.ParseQuestions("")

		assert.ErrorIs(t, err, aiquiz.ErrEmptyResponse)
	})
}

func TestParseQuestions_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "NotJSON", raw: "Sorry, I can't help with that."},
		{name: "Null", raw: "null"},
		{name: "FencedNull", raw: "```json\nnull\n```"},
		{name: "Object", raw: `{"id":1}`},
		{name: "MissingExplanation", raw: `[{"id":1,"text":"q","options":["a","b","c","d"],"correctAnswerIndex":0}]`},
		{name: "MissingIndex", raw: `[{"id":1,"text":"q","options":["a","b","c","d"],"explanation":"e"}]`},
		{name: "FiveOptions", raw: `[{"id":1,"text":"q","options":["a","b","c","d","e"],"correctAnswerIndex":0,"explanation":"e"}]`},
		{name: "NegativeIndex", raw: `[{"id":1,"text":"q","options":["a","b","c","d"],"correctAnswerIndex":-1,"explanation":"e"}]`},
		{name: "IndexTooLarge", raw: `[{"id":1,"text":"q","options":["a","b","c","d"],"correctAnswerIndex":4,"explanation":"e"}]`},
		{name: "WrongType", raw: `[{"id":"one","text":"q","options":["a","b","c","d"],"correctAnswerIndex":0,"explanation":"e"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := aiquiz.ParseQuestions(tt.raw)

			assert.ErrorIs(t, err, aiquiz.ErrMalformedResponse)
			assert.Nil(t, questions)
		})
	}
}
