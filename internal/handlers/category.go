package handlers

import (
	"net/http"
	"strconv"

	"github.com/javazz137/Trivia-Api-final/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory int        `json:"current_category"`
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.triviaService.ListCategories()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	// The full set, never paginated: consumers expect every category in the
	// id->type map and the table holds a handful of rows.
	if len(categories) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categoryMap(categories),
	})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        category_id path int true "Category ID"
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories/{category_id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		notFound(c)
		return
	}

	questions, err := h.triviaService.QuestionsByCategory(categoryID)
	if err != nil {
		unprocessable(c)
		return
	}
	if len(questions) == 0 {
		notFound(c)
		return
	}

	questionPage := paginate(pageParam(c), questions)
	if len(questionPage) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questionPage,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
