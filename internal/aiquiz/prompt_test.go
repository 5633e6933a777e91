package aiquiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/chronos-aiquiz/internal/aiquiz"
)

func TestBuildQuestionsPrompt(t *testing.T) {
	prompt := aiquiz.BuildQuestionsPrompt(sampleConfig)

	assert.Contains(t, prompt, "Mavzu: Math - Algebra - Linear Equations")
	assert.Contains(t, prompt, "Qiyinchilik: Easy")
	assert.Contains(t, prompt, "Savollar soni: 5")
	assert.Contains(t, prompt, "Til: O'zbek tili")
	assert.Contains(t, prompt, "4 ta variant (options), bitta to'g'ri javob indeksi (0-3).")
	assert.Contains(t, prompt, "Javob faqat JSON array formatida bo'lsin.")
	assert.Equal(t, prompt, aiquiz.BuildQuestionsPrompt(sampleConfig))
}

func TestBuildQuestionsPrompt_InterpolatesVerbatim(t *testing.T) {
	prompt := aiquiz.BuildQuestionsPrompt(aiquiz.QuizConfig{})

	assert.Contains(t, prompt, "Mavzu:  -  - \n")
	assert.Contains(t, prompt, "Savollar soni: 0")
}

func TestBuildAnalysisPrompt(t *testing.T) {
	tests := []struct {
		name string
		res  aiquiz.PerformanceResult
		want string
	}{
		{
			name: "Integers",
			res:  aiquiz.PerformanceResult{Score: 4, TotalQuestions: 5, SubTopic: "Fractions"},
			want: "Talabaning natijasini tahlil qiling: 4/5 to'g'ri. Mavzu: Fractions. Qisqa va motivatsion tahlil bering.",
		},
		{
			name: "Fractional",
			res:  aiquiz.PerformanceResult{Score: 3.5, TotalQuestions: 10, SubTopic: "Kinematics"},
			want: "Talabaning natijasini tahlil qiling: 3.5/10 to'g'ri. Mavzu: Kinematics. Qisqa va motivatsion tahlil bering.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aiquiz.BuildAnalysisPrompt(tt.res))
		})
	}
}
