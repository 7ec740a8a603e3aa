package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"staffroll/internal/config"
	"staffroll/internal/document"
	"staffroll/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
	logger     *slog.Logger
	sessionID  string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		sessionID:    uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			c.configErr = fmt.Errorf("build logger: %w", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.logger = logger
		logger.Debug("configuration loaded", logging.String("config_path", resolved))
	})
	return c.config, c.configErr
}

// commandLogger returns the invocation logger tagged with the subcommand name.
func (c *commandContext) commandLogger(cmd *cobra.Command) *slog.Logger {
	logger := c.logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.NewComponentLogger(logger, "cli").With(logging.String(logging.FieldCommand, cmd.Name()))
}

func (c *commandContext) documentOptions(cmd *cobra.Command) document.Options {
	opts := document.Options{Logger: c.commandLogger(cmd)}
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		opts.BackupDir = cfg.BackupDir()
		opts.LockTimeout = cfg.LockTimeout()
	}
	return opts
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
