package cli

import (
	"strings"
	"time"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
)

// wordsPerMinute is the reading speed the reading-time estimate assumes.
const wordsPerMinute = 225

// ReadingTime estimates how many minutes it takes to read content,
// rounding up. Empty content reads in zero minutes.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// FormatDate renders a timestamp the way post listings show it.
func FormatDate(t time.Time) string {
	return t.Format("2.1.2006")
}

func posterLabel(blog models.Blog) string {
	if blog.PosterName != "" {
		return blog.PosterName
	}
	return blog.PosterID
}

func joinTopics(topics []string) string {
	return strings.Join(topics, ", ")
}
