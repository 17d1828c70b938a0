package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DataDir   string // ORCINUS_DATA_DIR (default: user home directory)
	StateFile string // ORCINUS_STATE_FILE (default ".orcinus_questions.toml")
}

func Load() (*Config, error) {
	c := &Config{
		DataDir:   os.Getenv("ORCINUS_DATA_DIR"),
		StateFile: envOrDefault("ORCINUS_STATE_FILE", ".orcinus_questions.toml"),
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ORCINUS_DATA_DIR unset and no home directory: %w", err)
		}
		c.DataDir = home
	}
	return c, nil
}

// StatePath is the full path of the persisted answers file.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, c.StateFile)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
