package aiquiz

import (
	"fmt"
	"strconv"
)

const questionsPromptTemplate = `Dostonbek Academy ta'lim platformasi uchun professional test savollarini yarating.

Mavzu: %s - %s - %s
Qiyinchilik: %s
Savollar soni: %d
Til: O'zbek tili
Format: JSON array

Xususiyatlar:
1. 4 ta variant (options), bitta to'g'ri javob indeksi (0-3).
2. Har bir savol uchun tushunarli izoh (explanation) yozing.
3. Javob faqat JSON array formatida bo'lsin.`

const analysisPromptTemplate = "Talabaning natijasini tahlil qiling: %s/%s to'g'ri. Mavzu: %s. Qisqa va motivatsion tahlil bering."

// BuildQuestionsPrompt renders the generation instruction. Caller fields are
// interpolated as given.
func BuildQuestionsPrompt(cfg QuizConfig) string {
	return fmt.Sprintf(
		questionsPromptTemplate,
		cfg.Category, cfg.Topic, cfg.SubTopic,
		cfg.Difficulty,
		cfg.QuestionCount,
	)
}

func BuildAnalysisPrompt(res PerformanceResult) string {
	return fmt.Sprintf(
		analysisPromptTemplate,
		formatNumber(res.Score),
		formatNumber(res.TotalQuestions),
		res.SubTopic,
	)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
