package config

import "strings"

// Normalize trims string fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
}
