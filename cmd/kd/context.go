package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/config"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/store"
)

type commandContext struct {
	configFlag *string
	verbosity  *int
	assumeYes  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verbosity *int, assumeYes *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbosity:  verbosity,
		assumeYes:  assumeYes,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the stderr logger once, after the config is known.
func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		verbosity := 0
		if c.verbosity != nil {
			verbosity = *c.verbosity
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, verbosity, cmd.ErrOrStderr())
	})
	return c.logger, c.loggerErr
}

// loggerFor returns the command logger tagged with the running command.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	logger, err := c.ensureLogger(cmd)
	if err != nil || logger == nil {
		logger = logging.NewNop()
	}
	return logging.WithContext(cmd.Context(), logger)
}

func (c *commandContext) openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg, c.loggerFor(cmd))
}

func (c *commandContext) skipConfirm() bool {
	return c.assumeYes != nil && *c.assumeYes
}

func (c *commandContext) suggestionLimit() int {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return config.Default().Prompt.SuggestionLimit
	}
	return cfg.Prompt.SuggestionLimit
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
