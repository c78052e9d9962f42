package quiz

import (
	"fmt"

	"quizapp/internal/question"
)

// Intent is a user action a presenter asks the session to apply.
type Intent interface {
	Name() string
	intent()
}

// RecordAnswer stores Answer for the current question, replacing any earlier answer.
type RecordAnswer struct {
	Answer Answer
}

// Advance moves to the next question, or to completion from the last one.
type Advance struct{}

// Reset discards all progress and returns to the first question.
type Reset struct{}

func (RecordAnswer) Name() string { return "record" }
func (Advance) Name() string      { return "advance" }
func (Reset) Name() string        { return "reset" }

func (RecordAnswer) intent() {}
func (Advance) intent()      {}
func (Reset) intent()        {}

// Reduce applies an intent to a state and returns the resulting state. The
// input state is never modified. Recording an answer when the quiz is
// complete, or an answer that does not fit the current question, panics with
// a PreconditionViolation.
func Reduce(catalog *question.Catalog, state State, intent Intent) State {
	next, _ := reduce(catalog, state, intent)
	return next
}

// reduce applies an intent and reports whether the state changed.
func reduce(catalog *question.Catalog, state State, intent Intent) (State, bool) {
	switch typed := intent.(type) {
	case RecordAnswer:
		return applyRecord(catalog, state, typed.Answer), true
	case Advance:
		if state.CurrentIndex >= catalog.Count() {
			return state, false
		}
		next := state.Clone()
		next.CurrentIndex++
		return next, true
	case Reset:
		return NewState(), true
	default:
		violate("reduce", "unsupported intent %s", describeIntent(intent))
		return state, false
	}
}

// applyRecord stores an answer at the current index.
func applyRecord(catalog *question.Catalog, state State, answer Answer) State {
	if state.CurrentIndex >= catalog.Count() {
		violate("record", "quiz is complete, there is no current question")
	}
	current := catalog.At(state.CurrentIndex)
	if reason := checkAnswer(current, answer); reason != "" {
		violate("record", "%s", reason)
	}
	next := state.Clone()
	next.Answers[state.CurrentIndex] = answer
	return next
}

func describeIntent(intent Intent) string {
	if intent == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", intent)
}
