package quiz

import (
	"strings"

	"quizapp/internal/question"
)

// CanProceed reports whether answer is complete enough to leave q. A nil
// answer, or one of the wrong kind, never is.
func CanProceed(q question.Question, answer Answer) bool {
	switch q.(type) {
	case question.TrueFalse:
		_, ok := answer.(TrueFalseAnswer)
		return ok
	case question.SingleChoice:
		_, ok := answer.(SingleChoiceAnswer)
		return ok
	case question.MultiChoice:
		selection, ok := answer.(MultiChoiceAnswer)
		return ok && selection.Len() > 0
	case question.TextEntry:
		text, ok := answer.(TextAnswer)
		return ok && strings.TrimSpace(string(text)) != ""
	default:
		return false
	}
}
