package aiquiz

type QuizConfig struct {
	Category      string `json:"category"`
	Topic         string `json:"topic"`
	SubTopic      string `json:"subTopic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

type Question struct {
	ID                 int      `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// PerformanceResult is the outcome of a finished quiz. Only the fields used in
// the analysis prompt are typed; anything else the client sends is ignored.
type PerformanceResult struct {
	Score          float64 `json:"score"`
	TotalQuestions float64 `json:"totalQuestions"`
	SubTopic       string  `json:"subTopic"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
