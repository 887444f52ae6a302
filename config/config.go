package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Moderator struct {
		Password string `yaml:"password"`
	} `yaml:"moderator"`

	Debate struct {
		MaxSuggestions        int `yaml:"maxSuggestions"`
		MaxSuggestionLength   int `yaml:"maxSuggestionLength"`
		MaxReactions          int `yaml:"maxReactions"`
		ReactionWindowSeconds int `yaml:"reactionWindowSeconds"`
	} `yaml:"debate"`
}

// LoadConfig reads the configuration file and fills in defaults for unset
// tunables. The moderator password has no default: leaving it empty keeps the
// moderator surface locked.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Debate.MaxSuggestions == 0 {
		cfg.Debate.MaxSuggestions = 3
	}
	if cfg.Debate.MaxSuggestionLength == 0 {
		cfg.Debate.MaxSuggestionLength = 200
	}
	if cfg.Debate.MaxReactions == 0 {
		cfg.Debate.MaxReactions = 5
	}
	if cfg.Debate.ReactionWindowSeconds == 0 {
		cfg.Debate.ReactionWindowSeconds = 10
	}

	return &cfg, nil
}
