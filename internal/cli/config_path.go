package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizapp/internal/config"
	"quizapp/internal/question"
)

// settings is the loaded config plus where it came from.
type settings struct {
	cfg  config.Config
	root string
	path string
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadSettings loads the config file. A missing auto-detected config yields
// defaults; an explicit path must exist.
func loadSettings(configPath string) (settings, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) == "" && errors.Is(err, config.ErrConfigNotFound) {
			cfg := config.Config{Version: 1}
			config.Normalize(&cfg)
			return settings{cfg: cfg}, nil
		}
		return settings{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return settings{}, err
	}
	return settings{cfg: cfg, root: config.RootFromConfigPath(resolved), path: resolved}, nil
}

// loadCatalog picks the catalog from the flag, then the config, then the
// built-in default. The returned source names it for messages.
func loadCatalog(questionsPath string, s settings) (*question.Catalog, string, error) {
	path := strings.TrimSpace(questionsPath)
	if path == "" {
		path = config.QuestionsPath(s.cfg, s.root)
	}
	if path == "" {
		return question.DefaultCatalog(), "built-in questions", nil
	}
	catalog, err := question.LoadCatalog(path)
	if err != nil {
		return nil, path, err
	}
	return catalog, path, nil
}
