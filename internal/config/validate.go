package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness and its referenced catalog file.
func Validate(cfg *Config, root string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if !ValidUIMode(cfg.UI.Mode) {
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	if path := QuestionsPath(*cfg, root); path != "" {
		info, err := os.Stat(path)
		switch {
		case os.IsNotExist(err):
			add("questions_file", fmt.Sprintf("file not found: %s", cfg.QuestionsFile))
		case err != nil:
			add("questions_file", err.Error())
		case info.IsDir():
			add("questions_file", fmt.Sprintf("is a directory: %s", cfg.QuestionsFile))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ValidUIMode reports whether mode is a known UI mode.
func ValidUIMode(mode string) bool {
	switch mode {
	case UIModeAuto, UIModeLive, UIModePlain:
		return true
	default:
		return false
	}
}
