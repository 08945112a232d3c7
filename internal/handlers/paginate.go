package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const questionsPerPage = 10

// paginate slices out the 1-based page of ten items. An out-of-range page is
// an empty slice, never an error; callers decide whether that means 404.
func paginate[T any](page int, items []T) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * questionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + questionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// pageParam reads ?page=N, falling back to 1 on anything unusable.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
