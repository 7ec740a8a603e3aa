package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"staffroll/internal/staffroll"
	"staffroll/internal/testsupport"
)

func TestCatalogCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"catalog"}, "")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	requireContains(t, out, "set-text")
	requireContains(t, out, "frames (0-65535)")
	requireContains(t, out, "end-fireworks")

	out, _, err = runCLI(t, []string{"catalog", "--json"}, "")
	if err != nil {
		t.Fatalf("catalog --json: %v", err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode catalog json: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected 20 insertable types, got %d", len(entries))
	}
	if entries[0].Type != "wait" || entries[0].Opcode != 1 || len(entries[0].Fields) != 1 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}

func TestDumpCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	file := env.path("roll.bin")
	testsupport.WriteStaffRoll(t, file, staffroll.Wait{Frames: 300}, staffroll.ShowTheEnd{})

	out := env.mustRun(t, "dump", file, "--json")
	var records []recordView
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode dump json: %v", err)
	}
	want := []recordView{
		{Offset: 0, Length: 4, Opcode: 0x01, Type: "wait", Payload: "012c"},
		{Offset: 4, Length: 2, Opcode: 0x10, Type: "show-the-end", Payload: ""},
		{Offset: 6, Length: 2, Opcode: 0x00, Type: "stop", Payload: ""},
	}
	if len(records) != len(want) {
		t.Fatalf("unexpected record count: %+v", records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d: got %+v want %+v", i, records[i], want[i])
		}
	}
}

func TestDumpReportsTruncation(t *testing.T) {
	env := setupCLITestEnv(t)
	file := env.path("bad.bin")
	testsupport.WriteFile(t, file, []byte{0x02, 0x05, 0x09, 0x63})

	out, _, err := runCLI(t, []string{"dump", file}, env.configPath)
	if !errors.Is(err, staffroll.ErrMalformedStream) {
		t.Fatalf("expected ErrMalformedStream, got %v", err)
	}
	requireContains(t, out, "show-text")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "editor.lock_timeout_seconds")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse an existing file")
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, target); err != nil {
		t.Fatalf("validate sample: %v", err)
	}
}
