package handlers

import (
	"net/http"
	"strconv"

	"github.com/javazz137/Trivia-Api-final/internal/models"
	"github.com/javazz137/Trivia-Api-final/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

type QuestionListResponse struct {
	Success        bool            `json:"success"`
	Questions      []Question      `json:"questions"`
	Categories     map[uint]string `json:"categories"`
	TotalQuestions int             `json:"total_questions"`
}

type DeleteQuestionResponse struct {
	Success        bool  `json:"success"`
	Deleted        uint  `json:"deleted"`
	TotalQuestions int64 `json:"total_questions"`
}

// Pointer fields so a missing key and a wrong-typed value are both rejected,
// not silently zeroed.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

type CreateQuestionResponse struct {
	Success        bool       `json:"success"`
	Created        uint       `json:"created"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type SearchQuestionsResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.triviaService.ListQuestions()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	categories, err := h.triviaService.ListCategories()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	questionPage := paginate(pageParam(c), questions)
	if len(questionPage) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:        true,
		Questions:      questionPage,
		Categories:     categoryMap(categories),
		TotalQuestions: len(questions),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	question, err := h.triviaService.GetQuestion(uint(id))
	if err != nil {
		notFound(c)
		return
	}

	if err := h.triviaService.DeleteQuestion(question); err != nil {
		unprocessable(c)
		return
	}

	total, err := h.triviaService.CountQuestions()
	if err != nil {
		unprocessable(c)
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        question.ID,
		TotalQuestions: total,
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.Question == nil || *req.Question == "" ||
		req.Answer == nil || *req.Answer == "" ||
		req.Category == nil || req.Difficulty == nil {
		badRequest(c)
		return
	}

	question := models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}
	if err := h.triviaService.CreateQuestion(&question); err != nil {
		unprocessable(c)
		return
	}

	questions, err := h.triviaService.ListQuestions()
	if err != nil {
		unprocessable(c)
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      paginate(pageParam(c), questions),
		TotalQuestions: len(questions),
	})
}

// SearchQuestions godoc
// @Summary      Search questions by substring
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		badRequest(c)
		return
	}

	matches, err := h.triviaService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		unprocessable(c)
		return
	}

	// No matches is a valid empty page, not an error.
	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      paginate(pageParam(c), matches),
		TotalQuestions: len(matches),
	})
}
