package question

import (
	"errors"
	"testing"
)

// TestDefaultCatalogShape verifies the built-in quiz covers every kind once.
func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()
	if catalog.Count() != 4 {
		t.Fatalf("expected 4 questions, got %d", catalog.Count())
	}
	for i, kind := range Kinds() {
		if catalog.At(i).Kind() != kind {
			t.Fatalf("question %d: expected %s, got %s", i, kind, catalog.At(i).Kind())
		}
	}
	if OptionCount(catalog.At(1)) != 4 || OptionCount(catalog.At(2)) != 4 {
		t.Fatalf("expected four options on choice questions")
	}
	if OptionCount(catalog.At(0)) != 0 {
		t.Fatalf("expected no options on true/false")
	}
}

// TestCatalogAtOutOfRangePanics verifies out-of-range access fails fast.
func TestCatalogAtOutOfRangePanics(t *testing.T) {
	catalog := DefaultCatalog()
	for _, index := range []int{-1, catalog.Count()} {
		func() {
			defer func() {
				recovered := recover()
				indexErr, ok := recovered.(IndexError)
				if !ok {
					t.Fatalf("expected IndexError panic, got %v", recovered)
				}
				if indexErr.Index != index || indexErr.Count != catalog.Count() {
					t.Fatalf("unexpected panic value: %+v", indexErr)
				}
			}()
			catalog.At(index)
		}()
	}
}

// TestNewCatalogValidation verifies constructor invariants.
func TestNewCatalogValidation(t *testing.T) {
	cases := []struct {
		name      string
		questions []Question
	}{
		{name: "empty"},
		{name: "blank text", questions: []Question{NewTrueFalse("a", "")}},
		{name: "one option", questions: []Question{NewSingleChoice("a", "Q", "x")}},
		{name: "blank option", questions: []Question{NewMultiChoice("a", "Q", "x", "")}},
		{name: "duplicate id", questions: []Question{NewTextEntry("a", "Q"), NewTextEntry("a", "R")}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.questions...)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

// TestCatalogIsImmutable verifies callers cannot mutate catalog contents.
func TestCatalogIsImmutable(t *testing.T) {
	options := []string{"a", "b"}
	catalog := MustCatalog(NewSingleChoice("s", "Pick", options...))
	options[0] = "changed"
	chooser := catalog.At(0).(Chooser)
	got := chooser.Options()
	if got[0] != "a" {
		t.Fatalf("expected catalog to keep its own options, got %q", got[0])
	}
	got[1] = "changed"
	if chooser.Options()[1] != "b" {
		t.Fatalf("expected Options to return a copy")
	}
	questions := catalog.Questions()
	questions[0] = NewTextEntry("x", "Y")
	if catalog.At(0).Kind() != KindSingleChoice {
		t.Fatalf("expected Questions to return a copy")
	}
}

// TestParseKind verifies catalog type names map onto kinds.
func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(string(kind))
		if err != nil || parsed != kind {
			t.Fatalf("ParseKind(%q) = %q, %v", kind, parsed, err)
		}
	}
	if _, err := ParseKind("essay"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
