package services

import (
	"errors"

	"github.com/javazz137/Trivia-Api-final/internal/models"

	"gorm.io/gorm"
)

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) CountQuestions() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *TriviaService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, errors.New("question not found")
	}
	return &question, nil
}

func (s *TriviaService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *TriviaService) DeleteQuestion(question *models.Question) error {
	return s.db.Delete(question).Error
}

// SearchQuestions matches the term as a case-insensitive substring of the
// question text. LOWER/LIKE instead of ILIKE so the query runs on both
// postgres and sqlite.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// QuizCandidates returns the questions eligible for the next quiz round.
// categoryID 0 means all categories; ids in previous are excluded.
func (s *TriviaService) QuizCandidates(categoryID int, previous []uint) ([]models.Question, error) {
	tx := s.db.Order("id ASC")
	if categoryID != 0 {
		tx = tx.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		tx = tx.Where("id NOT IN ?", previous)
	}

	var questions []models.Question
	if err := tx.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
