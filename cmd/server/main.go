package main

import (
	"log"

	"github.com/javazz137/Trivia-Api-final/internal/config"
	"github.com/javazz137/Trivia-Api-final/internal/database"
	"github.com/javazz137/Trivia-Api-final/internal/handlers"
	"github.com/javazz137/Trivia-Api-final/internal/services"

	_ "github.com/javazz137/Trivia-Api-final/docs"
)

// @title           Trivia API
// @version         1.0
// @description     CRUD and quiz endpoints over a trivia question dataset
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedCategories(db)

	triviaService := services.NewTriviaService(db)
	r := handlers.NewRouter(triviaService)

	log.Printf("listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
