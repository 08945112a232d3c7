package handlers

import (
	"github.com/javazz137/Trivia-Api-final/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the trivia endpoints onto a gin engine with the permissive
// CORS policy the frontend expects.
func NewRouter(triviaService *services.TriviaService) *gin.Engine {
	categoryHandler := NewCategoryHandler(triviaService)
	questionHandler := NewQuestionHandler(triviaService)
	quizHandler := NewQuizHandler(triviaService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "true"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(NoRoute)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:category_id/questions", categoryHandler.QuestionsByCategory)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
