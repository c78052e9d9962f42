package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, RootFromConfigPath(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a single strict YAML config document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// QuestionsPath resolves the configured catalog file against the root
// directory. It returns "" when no file is configured.
func QuestionsPath(cfg Config, root string) string {
	if cfg.QuestionsFile == "" {
		return ""
	}
	if filepath.IsAbs(cfg.QuestionsFile) {
		return cfg.QuestionsFile
	}
	return filepath.Join(root, cfg.QuestionsFile)
}
