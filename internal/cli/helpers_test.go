package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

const sampleQuestions = `version: 1
questions:
  - id: tf
    type: true_false
    text: "The sky is blue."
  - id: pick
    type: single_choice
    text: "Pick a number."
    options: ["one", "two"]
`

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// stubTerminal forces TTY detection for the duration of a test.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return tty }
}

// stubInput replaces the answer input for the duration of a test.
func stubInput(t *testing.T, in io.Reader) {
	t.Helper()
	original := playInput
	t.Cleanup(func() { playInput = original })
	playInput = in
}
