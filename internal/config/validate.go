package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEditor(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEditor() error {
	if c.Editor.LockTimeoutSeconds <= 0 {
		return errors.New("editor.lock_timeout_seconds must be positive")
	}
	switch c.Editor.ScriptFormat {
	case "toml", "yaml", "json":
	default:
		return fmt.Errorf("editor.script_format must be toml, yaml or json, got %q", c.Editor.ScriptFormat)
	}
	if c.Editor.BackupOnSave && strings.TrimSpace(c.Paths.BackupDir) == "" {
		return errors.New("paths.backup_dir must be set when editor.backup_on_save is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
}
