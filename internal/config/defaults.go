package config

const (
	defaultLogDir             = "~/.local/share/staffroll/logs"
	defaultBackupDir          = "~/.local/share/staffroll/backups"
	defaultBackupOnSave       = true
	defaultLockTimeoutSeconds = 5
	defaultScriptFormat       = "toml"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			BackupDir: defaultBackupDir,
		},
		Editor: Editor{
			BackupOnSave:       defaultBackupOnSave,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
			ScriptFormat:       defaultScriptFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
