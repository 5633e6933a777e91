package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-aiquiz/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary      Generate quiz questions
// @Tags         ai-quiz
// @Accept       json
// @Produce      json
// @Param        config  body      QuizConfig  true  "Quiz configuration"
// @Success      201     {array}   Question
// @Failure      400     {object}  map[string]string
// @Failure      502     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /ai-quiz/questions [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizConfig
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question generation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionCount <= 0 {
		config.Error(w, http.StatusBadRequest, "questionCount must be positive")
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		config.Error(w, statusFor(err), err.Error())
		return
	}

	config.JSON(w, http.StatusCreated, questions)
}

// AnalyzePerformance godoc
// @Summary      Summarize a quiz result
// @Tags         ai-quiz
// @Accept       json
// @Produce      json
// @Param        result  body      PerformanceResult  true  "Quiz result"
// @Success      200     {object}  AnalysisResponse
// @Failure      400     {object}  map[string]string
// @Router       /ai-quiz/analysis [post]
func (h *Handler) AnalyzePerformance(w http.ResponseWriter, r *http.Request) {
	var req PerformanceResult
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body for performance analysis")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	config.JSON(w, http.StatusOK, AnalysisResponse{
		Analysis: h.service.AnalyzePerformance(r.Context(), req),
	})
}

func statusFor(err error) int {
	if errors.Is(err, ErrMissingCredential) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
