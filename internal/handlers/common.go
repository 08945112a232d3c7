package handlers

import (
	"net/http"

	"github.com/javazz137/Trivia-Api-final/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not found"`
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   http.StatusBadRequest,
		Message: "bad request",
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   http.StatusNotFound,
		Message: "Not found",
	})
}

func unprocessable(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   http.StatusUnprocessableEntity,
		Message: "unprocessable",
	})
}

// NoRoute keeps unknown paths inside the uniform error envelope.
func NoRoute(c *gin.Context) {
	notFound(c)
}

func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}

// Type alias so swag can resolve models in annotations.
type Question = models.Question
