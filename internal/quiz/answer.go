package quiz

import (
	"fmt"
	"slices"
	"strings"

	"quizapp/internal/question"
)

// Answer is a recorded response. Each implementation answers exactly one
// question kind: TrueFalseAnswer, SingleChoiceAnswer, MultiChoiceAnswer and
// TextAnswer.
type Answer interface {
	Kind() question.Kind
	answer()
}

// TrueFalseAnswer answers a question.TrueFalse.
type TrueFalseAnswer bool

// SingleChoiceAnswer is the selected option index of a question.SingleChoice.
type SingleChoiceAnswer int

// TextAnswer is the raw text typed for a question.TextEntry.
type TextAnswer string

// MultiChoiceAnswer is the set of selected option indices of a
// question.MultiChoice. The zero value is the empty selection.
type MultiChoiceAnswer struct {
	indices []int
}

// NewMultiChoiceAnswer builds a selection from indices, dropping duplicates.
func NewMultiChoiceAnswer(indices ...int) MultiChoiceAnswer {
	if len(indices) == 0 {
		return MultiChoiceAnswer{}
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	return MultiChoiceAnswer{indices: slices.Compact(sorted)}
}

func (TrueFalseAnswer) Kind() question.Kind    { return question.KindTrueFalse }
func (SingleChoiceAnswer) Kind() question.Kind { return question.KindSingleChoice }
func (MultiChoiceAnswer) Kind() question.Kind  { return question.KindMultiChoice }
func (TextAnswer) Kind() question.Kind         { return question.KindTextEntry }

func (TrueFalseAnswer) answer()    {}
func (SingleChoiceAnswer) answer() {}
func (MultiChoiceAnswer) answer()  {}
func (TextAnswer) answer()         {}

// Indices returns the selected indices in ascending order.
func (a MultiChoiceAnswer) Indices() []int {
	return slices.Clone(a.indices)
}

// Len returns the number of selected options.
func (a MultiChoiceAnswer) Len() int {
	return len(a.indices)
}

// Contains reports whether index is selected.
func (a MultiChoiceAnswer) Contains(index int) bool {
	_, found := slices.BinarySearch(a.indices, index)
	return found
}

// Toggle returns a new selection with index added or removed.
func (a MultiChoiceAnswer) Toggle(index int) MultiChoiceAnswer {
	if a.Contains(index) {
		remaining := slices.DeleteFunc(a.Indices(), func(i int) bool { return i == index })
		return NewMultiChoiceAnswer(remaining...)
	}
	return NewMultiChoiceAnswer(append(a.Indices(), index)...)
}

// Equal reports whether both selections hold the same indices.
func (a MultiChoiceAnswer) Equal(other MultiChoiceAnswer) bool {
	return slices.Equal(a.indices, other.indices)
}

// checkAnswer returns a non-empty reason when a does not fit q.
func checkAnswer(q question.Question, a Answer) string {
	if a == nil {
		return "answer is nil"
	}
	if a.Kind() != q.Kind() {
		return fmt.Sprintf("%s answer recorded for %s question %q", a.Kind(), q.Kind(), q.ID())
	}
	optionCount := question.OptionCount(q)
	switch typed := a.(type) {
	case SingleChoiceAnswer:
		if int(typed) < 0 || int(typed) >= optionCount {
			return fmt.Sprintf("option %d out of range [0, %d) for question %q", int(typed), optionCount, q.ID())
		}
	case MultiChoiceAnswer:
		for _, index := range typed.indices {
			if index < 0 || index >= optionCount {
				return fmt.Sprintf("option %d out of range [0, %d) for question %q", index, optionCount, q.ID())
			}
		}
	}
	return ""
}

// Describe renders an answer for display using the question's option labels.
func Describe(q question.Question, a Answer) string {
	if a == nil {
		return "(no answer)"
	}
	var options []string
	if chooser, ok := q.(question.Chooser); ok {
		options = chooser.Options()
	}
	label := func(index int) string {
		if index >= 0 && index < len(options) {
			return options[index]
		}
		return fmt.Sprintf("#%d", index+1)
	}
	switch typed := a.(type) {
	case TrueFalseAnswer:
		if typed {
			return "True"
		}
		return "False"
	case SingleChoiceAnswer:
		return label(int(typed))
	case MultiChoiceAnswer:
		if typed.Len() == 0 {
			return "(none selected)"
		}
		labels := make([]string, 0, typed.Len())
		for _, index := range typed.indices {
			labels = append(labels, label(index))
		}
		return strings.Join(labels, ", ")
	case TextAnswer:
		return fmt.Sprintf("%q", strings.TrimSpace(string(typed)))
	default:
		return fmt.Sprintf("%v", a)
	}
}
