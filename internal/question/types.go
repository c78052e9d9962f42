package question

import "fmt"

// Kind identifies the input a question expects.
type Kind string

const (
	// KindTrueFalse expects a boolean answer.
	KindTrueFalse Kind = "true_false"
	// KindSingleChoice expects exactly one option index.
	KindSingleChoice Kind = "single_choice"
	// KindMultiChoice expects a set of option indices.
	KindMultiChoice Kind = "multi_choice"
	// KindTextEntry expects free text.
	KindTextEntry Kind = "text_entry"
)

// Kinds lists every supported question kind in display order.
func Kinds() []Kind {
	return []Kind{KindTrueFalse, KindSingleChoice, KindMultiChoice, KindTextEntry}
}

// ParseKind converts a catalog type string into a Kind.
func ParseKind(value string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown question type %q", value)
}

// Label returns a short human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindTrueFalse:
		return "True or false"
	case KindSingleChoice:
		return "Pick one"
	case KindMultiChoice:
		return "Pick all that apply"
	case KindTextEntry:
		return "Type your answer"
	default:
		return string(k)
	}
}

// Question is one immutable catalog entry. The set of implementations is
// closed: TrueFalse, SingleChoice, MultiChoice and TextEntry.
type Question interface {
	ID() string
	Text() string
	Kind() Kind
	question()
}

// Chooser is implemented by the question kinds that offer options.
type Chooser interface {
	Question
	Options() []string
}

// TrueFalse asks for a yes/no judgement.
type TrueFalse struct {
	id   string
	text string
}

// NewTrueFalse builds a true/false question.
func NewTrueFalse(id, text string) TrueFalse {
	return TrueFalse{id: id, text: text}
}

func (q TrueFalse) ID() string   { return q.id }
func (q TrueFalse) Text() string { return q.text }
func (q TrueFalse) Kind() Kind   { return KindTrueFalse }
func (TrueFalse) question()      {}

// SingleChoice asks for exactly one of its options.
type SingleChoice struct {
	id      string
	text    string
	options []string
}

// NewSingleChoice builds a single choice question. The options slice is copied.
func NewSingleChoice(id, text string, options ...string) SingleChoice {
	return SingleChoice{id: id, text: text, options: cloneStrings(options)}
}

func (q SingleChoice) ID() string   { return q.id }
func (q SingleChoice) Text() string { return q.text }
func (q SingleChoice) Kind() Kind   { return KindSingleChoice }
func (SingleChoice) question()      {}

// Options returns a copy of the answer options.
func (q SingleChoice) Options() []string { return cloneStrings(q.options) }

// MultiChoice asks for any subset of its options.
type MultiChoice struct {
	id      string
	text    string
	options []string
}

// NewMultiChoice builds a multiple choice question. The options slice is copied.
func NewMultiChoice(id, text string, options ...string) MultiChoice {
	return MultiChoice{id: id, text: text, options: cloneStrings(options)}
}

func (q MultiChoice) ID() string   { return q.id }
func (q MultiChoice) Text() string { return q.text }
func (q MultiChoice) Kind() Kind   { return KindMultiChoice }
func (MultiChoice) question()      {}

// Options returns a copy of the answer options.
func (q MultiChoice) Options() []string { return cloneStrings(q.options) }

// TextEntry asks for a free text answer.
type TextEntry struct {
	id   string
	text string
}

// NewTextEntry builds a free text question.
func NewTextEntry(id, text string) TextEntry {
	return TextEntry{id: id, text: text}
}

func (q TextEntry) ID() string   { return q.id }
func (q TextEntry) Text() string { return q.text }
func (q TextEntry) Kind() Kind   { return KindTextEntry }
func (TextEntry) question()      {}

// OptionCount returns the number of options a question offers, or zero for
// kinds without options.
func OptionCount(q Question) int {
	if chooser, ok := q.(Chooser); ok {
		return len(chooser.Options())
	}
	return 0
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
