package config

// Config is the .quiz/config.yml schema.
type Config struct {
	Version       int      `yaml:"version"`
	QuestionsFile string   `yaml:"questions_file"`
	UI            UIConfig `yaml:"ui"`
	Verbose       bool     `yaml:"verbose"`
}

// UIConfig selects how the quiz is presented.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// UI modes accepted in config files and on the command line.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)
