package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/javazz137/Trivia-Api-final/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	triviaService *services.TriviaService
}

func NewQuizHandler(triviaService *services.TriviaService) *QuizHandler {
	return &QuizHandler{triviaService: triviaService}
}

type QuizCategory struct {
	ID int `json:"id"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_question"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Pick a random unseen question for the quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Previous question ids and optional category filter"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	// Bind through a map first: an absent or empty body is a 400, while a
	// body with either optional key alone is fine.
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || len(body) == 0 {
		badRequest(c)
		return
	}

	var req QuizRequest
	if raw, ok := body["previous_question"]; ok {
		if err := json.Unmarshal(raw, &req.PreviousQuestions); err != nil {
			badRequest(c)
			return
		}
	}
	if raw, ok := body["quiz_category"]; ok {
		if err := json.Unmarshal(raw, &req.QuizCategory); err != nil {
			badRequest(c)
			return
		}
	}

	categoryID := 0
	if req.QuizCategory != nil {
		categoryID = req.QuizCategory.ID
	}

	candidates, err := h.triviaService.QuizCandidates(categoryID, req.PreviousQuestions)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// An exhausted pool ends the quiz: a null question, not an error.
	if len(candidates) == 0 {
		c.JSON(http.StatusOK, QuizResponse{Success: true, Question: nil})
		return
	}

	question := candidates[rand.Intn(len(candidates))]
	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: &question})
}
