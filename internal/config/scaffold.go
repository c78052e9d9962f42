package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"quizapp/internal/question"
)

const configTemplate = `version: 1
questions_file: %q
ui:
  mode: auto
  no_color: false
verbose: false
`

// Scaffold writes a default config at configPath and the built-in catalog
// next to it. Existing files are never overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	questionsPath := filepath.Join(filepath.Dir(configPath), QuestionsFileName)
	for _, path := range []string{configPath, questionsPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", path)
			}
			return fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %q: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var catalog bytes.Buffer
	if err := question.WriteYAML(&catalog, question.DocumentFor(question.DefaultCatalog())); err != nil {
		return err
	}
	if err := os.WriteFile(questionsPath, catalog.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write questions file: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(scaffoldConfig(configPath, questionsPath)), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// scaffoldConfig points questions_file at the written catalog.
func scaffoldConfig(configPath, questionsPath string) string {
	rel, err := filepath.Rel(RootFromConfigPath(configPath), questionsPath)
	if err != nil {
		rel = questionsPath
	}
	return fmt.Sprintf(configTemplate, filepath.ToSlash(rel))
}
