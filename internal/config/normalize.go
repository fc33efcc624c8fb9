package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizePrompt()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		if value, ok := os.LookupEnv("KD_DATA_DIR"); ok {
			c.Paths.DataDir = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		if c.Paths.DataDir, err = DefaultDataDir(); err != nil {
			return fmt.Errorf("paths.data_dir: %w", err)
		}
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.ConfigDir, err = expandPath(c.Paths.ConfigDir); err != nil {
		return fmt.Errorf("config directory: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if strings.TrimSpace(c.Logging.Level) == "" {
		if value, ok := os.LookupEnv("KD_LOG_LEVEL"); ok {
			c.Logging.Level = value
		}
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	file := strings.TrimSpace(c.Logging.File)
	if file == "" {
		c.Logging.File = ""
		return nil
	}
	if !strings.HasPrefix(file, "~") && !filepath.IsAbs(file) {
		file = filepath.Join(c.Paths.DataDir, file)
	}
	var err error
	if c.Logging.File, err = expandPath(file); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizePrompt() {
	if c.Prompt.SuggestionLimit == 0 {
		c.Prompt.SuggestionLimit = defaultSuggestionLimit
	}
}
