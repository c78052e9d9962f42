package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question catalog.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDocument trims whitespace, fills default ids and validates a
// catalog document.
func NormalizeDocument(doc Document) (Document, error) {
	collector := &issueCollector{}
	if doc.Version == 0 {
		collector.add("version", "is required")
	} else if doc.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", doc.Version))
	}
	if len(doc.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	doc.Questions = append([]Entry(nil), doc.Questions...)
	seenIDs := map[string]struct{}{}
	for i, entry := range doc.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			entry.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[entry.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", entry.ID))
		} else {
			seenIDs[entry.ID] = struct{}{}
		}

		entry.Text = strings.TrimSpace(entry.Text)
		if entry.Text == "" {
			collector.add(prefix+".text", "is required")
		}

		entry.Type = strings.ToLower(strings.TrimSpace(entry.Type))
		kind, err := ParseKind(entry.Type)
		if err != nil {
			collector.add(prefix+".type", err.Error())
		}

		entry.Options = normalizeStringSlice(entry.Options)
		switch kind {
		case KindSingleChoice, KindMultiChoice:
			if len(entry.Options) < 2 {
				collector.add(prefix+".options", "must include at least two entries")
			}
			for optionIndex, option := range entry.Options {
				if option == "" {
					collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
				}
			}
		case KindTrueFalse, KindTextEntry:
			if len(entry.Options) > 0 {
				collector.add(prefix+".options", fmt.Sprintf("not allowed for type %s", kind))
			}
		}
		doc.Questions[i] = entry
	}

	if err := collector.result(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Catalog builds a catalog from a normalized document.
func (doc Document) Catalog() (*Catalog, error) {
	questions := make([]Question, 0, len(doc.Questions))
	for i, entry := range doc.Questions {
		kind, err := ParseKind(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		switch kind {
		case KindTrueFalse:
			questions = append(questions, NewTrueFalse(entry.ID, entry.Text))
		case KindSingleChoice:
			questions = append(questions, NewSingleChoice(entry.ID, entry.Text, entry.Options...))
		case KindMultiChoice:
			questions = append(questions, NewMultiChoice(entry.ID, entry.Text, entry.Options...))
		case KindTextEntry:
			questions = append(questions, NewTextEntry(entry.ID, entry.Text))
		}
	}
	return NewCatalog(questions...)
}

func normalizeStringSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
