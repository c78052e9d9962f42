package quiz

import (
	"github.com/google/uuid"

	"quizapp/internal/question"
)

// Session owns the state of one pass through a catalog. It is the single
// source of truth for presenters: they read from it before rendering and
// call RecordAnswer, Advance and Reset in response to input. A Session is not
// safe for concurrent use.
type Session struct {
	id        string
	catalog   *question.Catalog
	state     State
	observers []subscription
	nextSubID int
}

// NewSession starts a session on the first question of catalog.
func NewSession(catalog *question.Catalog) *Session {
	if catalog == nil {
		violate("new session", "catalog is nil")
	}
	return &Session{
		id:      uuid.NewString(),
		catalog: catalog,
		state:   NewState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the catalog the session walks through.
func (s *Session) Catalog() *question.Catalog {
	return s.catalog
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

// CurrentIndex returns the index of the current question, or the question
// count once the quiz is complete.
func (s *Session) CurrentIndex() int {
	return s.state.CurrentIndex
}

// QuestionCount returns the number of questions in the catalog.
func (s *Session) QuestionCount() int {
	return s.catalog.Count()
}

// IsComplete reports whether every question has been advanced past.
func (s *Session) IsComplete() bool {
	return s.state.CurrentIndex == s.catalog.Count()
}

// IsLastQuestion reports whether the current question is the final one.
func (s *Session) IsLastQuestion() bool {
	return s.state.CurrentIndex == s.catalog.Count()-1
}

// CurrentQuestion returns the current question, or false once complete.
func (s *Session) CurrentQuestion() (question.Question, bool) {
	if s.IsComplete() {
		return nil, false
	}
	return s.catalog.At(s.state.CurrentIndex), true
}

// CurrentAnswer returns the answer recorded for the current question.
func (s *Session) CurrentAnswer() (Answer, bool) {
	if s.IsComplete() {
		return nil, false
	}
	return s.state.AnswerAt(s.state.CurrentIndex)
}

// AnswerAt returns the answer recorded for question index i.
func (s *Session) AnswerAt(i int) (Answer, bool) {
	return s.state.AnswerAt(i)
}

// CanProceed reports whether the current answer allows advancing.
func (s *Session) CanProceed() bool {
	current, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	answer, _ := s.CurrentAnswer()
	return CanProceed(current, answer)
}

// RecordAnswer stores answer for the current question, replacing any earlier
// one. It panics with a PreconditionViolation when the quiz is complete or
// the answer does not fit the current question.
func (s *Session) RecordAnswer(answer Answer) {
	s.Dispatch(RecordAnswer{Answer: answer})
}

// RecordTrueFalse records a true/false answer.
func (s *Session) RecordTrueFalse(value bool) {
	s.RecordAnswer(TrueFalseAnswer(value))
}

// RecordSingleChoice records the selected option index.
func (s *Session) RecordSingleChoice(index int) {
	s.RecordAnswer(SingleChoiceAnswer(index))
}

// RecordMultiChoice records the selected option indices.
func (s *Session) RecordMultiChoice(indices ...int) {
	s.RecordAnswer(NewMultiChoiceAnswer(indices...))
}

// RecordText records a free text answer as typed.
func (s *Session) RecordText(text string) {
	s.RecordAnswer(TextAnswer(text))
}

// Advance moves to the next question. It does nothing once complete.
func (s *Session) Advance() {
	s.Dispatch(Advance{})
}

// Reset discards every answer and returns to the first question.
func (s *Session) Reset() {
	s.Dispatch(Reset{})
}

// Dispatch applies an intent and notifies observers when the state changed.
func (s *Session) Dispatch(intent Intent) {
	before := s.state
	after, changed := reduce(s.catalog, before, intent)
	if !changed {
		return
	}
	s.state = after
	s.notify(Change{
		SessionID: s.id,
		Intent:    intent,
		Before:    before.Clone(),
		After:     after.Clone(),
	})
}

// Subscribe registers an observer for future changes. The returned function
// removes it; calling it more than once is harmless.
func (s *Session) Subscribe(observer Observer) func() {
	if observer == nil {
		violate("subscribe", "observer is nil")
	}
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, observer: observer})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify delivers a change to observers in registration order.
func (s *Session) notify(change Change) {
	observers := append([]subscription(nil), s.observers...)
	for _, sub := range observers {
		sub.observer.OnChange(change)
	}
}
