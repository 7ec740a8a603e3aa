package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"staffroll/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	backupDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STAFFROLL_LOG_LEVEL", "")

	cfg := testsupport.NewConfig(t)
	return &cliTestEnv{
		baseDir:    filepath.Dir(cfg.Paths.LogDir),
		configPath: testsupport.WriteConfig(t, cfg),
		backupDir:  cfg.Paths.BackupDir,
	}
}

func (e *cliTestEnv) path(name string) string {
	return filepath.Join(e.baseDir, name)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRun runs the CLI and fails the test on error.
func (e *cliTestEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := runCLI(t, args, e.configPath)
	if err != nil {
		t.Fatalf("staffroll %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestRootHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root help: %v", err)
	}
	for _, sub := range []string{"add", "catalog", "dump", "export", "import", "move", "remove", "set", "show"} {
		requireContains(t, out, sub)
	}
}

func TestVersionSkipsConfig(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, filepath.Join(t.TempDir(), "broken.toml"))
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "staffroll ")
	requireContains(t, out, "21 command types")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--log-level", "loud", "show", env.path("x.bin")}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}
