package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/javazz137/Trivia-Api-final/internal/models"
	"github.com/javazz137/Trivia-Api-final/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter builds the full router over an in-memory sqlite store. Each
// test gets its own named database so state never crosses tests.
func setupRouter(t *testing.T, seed bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if seed {
		seedFixtures(t, db)
	}

	return NewRouter(services.NewTriviaService(db)), db
}

// Six categories; category 1 holds exactly three questions, category 6 none,
// and exactly two question texts contain "artist".
func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	questions := []models.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{Question: "Which Dutch graphic artist was known for optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "Which artist painted The Starry Night?", Answer: "Vincent van Gogh", Category: 2, Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{Question: "Who invented peanut butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{Question: "Which country was the first to implement daylight saving time?", Answer: "Germany", Category: 4, Difficulty: 3},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Question: "Whose autobiography is entitled I Know Why the Caged Bird Sings?", Answer: "Maya Angelou", Category: 5, Difficulty: 2},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var data map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return data
}

func assertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("status = %d, want %d", w.Code, code)
	}
	data := decode(t, w)
	if data["success"] != false {
		t.Errorf("success = %v, want false", data["success"])
	}
	if data["error"] != float64(code) {
		t.Errorf("error = %v, want %d", data["error"], code)
	}
	if data["message"] != message {
		t.Errorf("message = %q, want %q", data["message"], message)
	}
}
