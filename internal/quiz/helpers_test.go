package quiz

import (
	"testing"

	"quizapp/internal/question"
)

// scenarioCatalog mirrors the four question layout used across tests.
func scenarioCatalog() *question.Catalog {
	return question.MustCatalog(
		question.NewTrueFalse("tf", "Water is wet."),
		question.NewSingleChoice("single", "Pick one", "a", "b", "c", "d"),
		question.NewMultiChoice("multi", "Pick many", "a", "b", "c", "d"),
		question.NewTextEntry("text", "Say something"),
	)
}

// expectViolation asserts that fn panics with a PreconditionViolation.
func expectViolation(t *testing.T, fn func()) PreconditionViolation {
	t.Helper()
	var violation PreconditionViolation
	func() {
		defer func() {
			recovered := recover()
			typed, ok := recovered.(PreconditionViolation)
			if !ok {
				t.Fatalf("expected PreconditionViolation panic, got %v", recovered)
			}
			violation = typed
		}()
		fn()
	}()
	return violation
}
