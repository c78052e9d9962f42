package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"quizapp/internal/config"
)

// uiModeDecision records which presenter plays the quiz.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the live or plain presenter. Verbose runs are always plain.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = config.UIModeAuto
	}
	if !config.ValidUIMode(normalized) {
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose || normalized == config.UIModePlain {
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdout)
	if normalized == config.UIModeLive && !tty {
		return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain output."}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
