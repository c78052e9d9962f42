package quiz

import (
	"fmt"
	"io"

	"quizapp/internal/question"
)

const verbosePrefix = "[verbose]"

// VerboseObserver writes one line per session change to w.
func VerboseObserver(w io.Writer, catalog *question.Catalog) Observer {
	return ObserverFunc(func(change Change) {
		if w == nil {
			return
		}
		writeVerboseLine(w, formatChange(catalog, change))
	})
}

func writeVerboseLine(w io.Writer, line string) {
	fmt.Fprintf(w, "%s %s\n", verbosePrefix, line)
}

// formatChange renders a change as a single log line.
func formatChange(catalog *question.Catalog, change Change) string {
	line := fmt.Sprintf("session=%s intent=%s index=%d->%d", shortID(change.SessionID), change.Intent.Name(), change.Before.CurrentIndex, change.After.CurrentIndex)
	if record, ok := change.Intent.(RecordAnswer); ok && change.Before.CurrentIndex < catalog.Count() {
		current := catalog.At(change.Before.CurrentIndex)
		line += fmt.Sprintf(" question=%s answer=%s proceed=%t", current.ID(), Describe(current, record.Answer), CanProceed(current, record.Answer))
	}
	if change.After.CurrentIndex == catalog.Count() {
		line += " complete=true"
	}
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
