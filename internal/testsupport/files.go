package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"staffroll/internal/staffroll"
)

// WriteStaffRoll encodes cmds and writes them to path.
func WriteStaffRoll(t testing.TB, path string, cmds ...staffroll.Command) []byte {
	t.Helper()
	data, err := staffroll.Encode(cmds)
	if err != nil {
		t.Fatalf("encode staff roll: %v", err)
	}
	WriteFile(t, path, data)
	return data
}

// ReadStaffRoll reads and decodes the file at path.
func ReadStaffRoll(t testing.TB, path string) []staffroll.Command {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read staff roll: %v", err)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("decode staff roll %s: %v", path, err)
	}
	return cmds
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTOML marshals v as TOML into path.
func WriteTOML(t testing.TB, path string, v any) {
	t.Helper()
	data, err := toml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal toml: %v", err)
	}
	WriteFile(t, path, data)
}
