package live

import (
	"fmt"
	"strings"

	"quizapp/internal/question"
	"quizapp/internal/quiz"
)

// formatChange creates a short footer message for a session change.
func formatChange(catalog *question.Catalog, change quiz.Change) string {
	switch intent := change.Intent.(type) {
	case quiz.RecordAnswer:
		index := change.Before.CurrentIndex
		if index >= catalog.Count() {
			return ""
		}
		return fmt.Sprintf("%s answered: %s", formatIndex(index), quiz.Describe(catalog.At(index), intent.Answer))
	case quiz.Advance:
		if change.After.CurrentIndex >= catalog.Count() {
			return "Quiz complete"
		}
		return fmt.Sprintf("Moved to %s", formatIndex(change.After.CurrentIndex))
	case quiz.Reset:
		return "Quiz restarted"
	default:
		return ""
	}
}

// formatIndex formats a question index.
func formatIndex(index int) string {
	return fmt.Sprintf("Q%d", index+1)
}

// progressBar renders done/total as a fixed width bar.
func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
