package testsupport

import (
	"path/filepath"
	"testing"

	"staffroll/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.BackupDir = filepath.Join(base, "backups")
	cfgVal.Editor.LockTimeoutSeconds = 1

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithoutBackups disables backup-on-save.
func WithoutBackups() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Editor.BackupOnSave = false
	}
}

// WithScriptFormat sets the default export format.
func WithScriptFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Editor.ScriptFormat = format
	}
}

// WriteConfig renders cfg as TOML into the config's temp directory and
// returns the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(filepath.Dir(cfg.Paths.LogDir), "config.toml")
	WriteTOML(t, path, cfg)
	return path
}
