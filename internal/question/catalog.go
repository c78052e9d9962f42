package question

import "fmt"

// IndexError is the panic value raised when a catalog position outside
// [0, Count) is requested.
type IndexError struct {
	Index int
	Count int
}

// Error returns a readable message for the out-of-range access.
func (err IndexError) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d)", err.Index, err.Count)
}

// Catalog is the ordered, immutable list of questions a session walks through.
type Catalog struct {
	questions []Question
}

// NewCatalog validates the questions and freezes them into a catalog.
func NewCatalog(questions ...Question) (*Catalog, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	frozen := make([]Question, len(questions))
	copy(frozen, questions)
	return &Catalog{questions: frozen}, nil
}

// MustCatalog is NewCatalog for statically known question lists.
func MustCatalog(questions ...Question) *Catalog {
	catalog, err := NewCatalog(questions...)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Count returns the number of questions.
func (c *Catalog) Count() int {
	return len(c.questions)
}

// At returns the question at index i. It panics with an IndexError when i is
// outside [0, Count).
func (c *Catalog) At(i int) Question {
	if i < 0 || i >= len(c.questions) {
		panic(IndexError{Index: i, Count: len(c.questions)})
	}
	return c.questions[i]
}

// Questions returns a copy of the ordered question list.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// DefaultCatalog returns the built-in four question quiz.
func DefaultCatalog() *Catalog {
	return MustCatalog(
		NewTrueFalse("q1", "Go was first released to the public in 2009."),
		NewSingleChoice("q2", "Which keyword starts a new goroutine?",
			"go", "async", "spawn", "thread"),
		NewMultiChoice("q3", "Which of these are built-in Go types?",
			"map", "tuple", "chan", "set"),
		NewTextEntry("q4", "In one sentence, what do you like most about Go?"),
	)
}

// validateQuestions checks constructed questions before they are frozen.
func validateQuestions(questions []Question) error {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	seenIDs := map[string]struct{}{}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if q == nil {
			collector.add(prefix, "is nil")
			continue
		}
		if q.ID() != "" {
			if _, exists := seenIDs[q.ID()]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID()))
			} else {
				seenIDs[q.ID()] = struct{}{}
			}
		}
		if q.Text() == "" {
			collector.add(prefix+".text", "is required")
		}
		chooser, ok := q.(Chooser)
		if !ok {
			continue
		}
		options := chooser.Options()
		if len(options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		for optionIndex, option := range options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}
	}
	return collector.result()
}
