package quiz

import "maps"

// State is an immutable snapshot of a session: the position in the catalog
// and the answers recorded so far, keyed by question index. CurrentIndex
// equal to the catalog size means the quiz is complete.
type State struct {
	CurrentIndex int
	Answers      map[int]Answer
}

// NewState returns the initial state, positioned on the first question.
func NewState() State {
	return State{Answers: map[int]Answer{}}
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	answers := make(map[int]Answer, len(s.Answers))
	maps.Copy(answers, s.Answers)
	return State{CurrentIndex: s.CurrentIndex, Answers: answers}
}

// AnswerAt returns the answer recorded for question index i.
func (s State) AnswerAt(i int) (Answer, bool) {
	answer, ok := s.Answers[i]
	return answer, ok
}
