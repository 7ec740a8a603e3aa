package main

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"staffroll/internal/staffroll"
	"staffroll/internal/testsupport"
)

func TestCLIExportImportRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	file := env.path("StaffRoll.bin")
	cmds := []staffroll.Command{
		staffroll.SwitchSceneAndWait{Scene: 2},
		staffroll.SetText{Title: "Director", Body: "Jos\xe9\nAnne"},
		staffroll.Wait{Frames: 600},
		staffroll.BeginFireworks{},
	}
	original := testsupport.WriteStaffRoll(t, file, cmds...)

	for _, ext := range []string{"toml", "yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			scriptPath := env.path("roll." + ext)
			out := env.mustRun(t, "export", file, "-o", scriptPath)
			requireContains(t, out, "Exported 4 commands")

			text, err := os.ReadFile(scriptPath)
			if err != nil {
				t.Fatalf("read script: %v", err)
			}
			if !strings.Contains(string(text), "José") {
				t.Fatalf("expected UTF-8 text in %s script:\n%s", ext, text)
			}

			rebuilt := env.path("rebuilt-" + ext + ".bin")
			out = env.mustRun(t, "import", scriptPath, "-o", rebuilt)
			requireContains(t, out, "Imported 4 commands")
			data, err := os.ReadFile(rebuilt)
			if err != nil {
				t.Fatalf("read rebuilt file: %v", err)
			}
			if !reflect.DeepEqual(data, original) {
				t.Fatalf("round trip through %s changed bytes:\n got % X\nwant % X", ext, data, original)
			}
		})
	}
}

func TestCLIExportStdoutUsesConfiguredFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithScriptFormat("yaml"))
	configPath := testsupport.WriteConfig(t, cfg)
	file := configPath + ".bin"
	testsupport.WriteStaffRoll(t, file, staffroll.Wait{Frames: 5})

	out, _, err := runCLI(t, []string{"export", file}, configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "commands:")
	requireContains(t, out, "type: wait")
	requireContains(t, out, "frames: 5")

	out, _, err = runCLI(t, []string{"export", file, "--format", "json"}, configPath)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	requireContains(t, out, `"type": "wait"`)
}

func TestCLIImportRejectsBadScripts(t *testing.T) {
	env := setupCLITestEnv(t)

	cases := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown type", "a.toml", "[[command]]\ntype = \"explode\"\n", "unknown command type"},
		{"field for other type", "b.yaml", "commands:\n  - type: show-text\n    frames: 3\n", "field not valid"},
		{"range", "c.json", `{"commands":[{"type":"switch-scene","scene":300}]}`, "out of range"},
		{"stop", "d.toml", "[[command]]\ntype = \"stop\"\n", "stop"},
		{"unknown key", "e.toml", "[[command]]\ntype = \"wait\"\ndelay = 1\n", "parse toml script"},
		{"no extension", "script", "", "cannot infer script format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := env.path(tc.file)
			testsupport.WriteFile(t, path, []byte(tc.content))
			target := env.path(tc.file + ".bin")
			_, _, err := runCLI(t, []string{"import", path, "-o", target}, env.configPath)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
			if _, statErr := os.Stat(target); statErr == nil {
				t.Fatal("failed import should not write output")
			}
		})
	}

	if _, _, err := runCLI(t, []string{"import", env.path("a.toml")}, env.configPath); err == nil {
		t.Fatal("expected import without --output to fail")
	}
}

func TestCLIExportImportKeepsTitleLineBreak(t *testing.T) {
	env := setupCLITestEnv(t)
	file := env.path("StaffRoll.bin")
	original := []byte{0x0A, 0x07, 0x04, 0x01, 'A', '\n', 'B', 0x00, 'x', 0x00, 0x02, 0x00}
	testsupport.WriteFile(t, file, original)

	scriptPath := env.path("roll.yaml")
	env.mustRun(t, "export", file, "-o", scriptPath)
	rebuilt := env.path("rebuilt.bin")
	env.mustRun(t, "import", scriptPath, "-o", rebuilt)

	data, err := os.ReadFile(rebuilt)
	if err != nil {
		t.Fatalf("read rebuilt file: %v", err)
	}
	if !reflect.DeepEqual(data, original) {
		t.Fatalf("round trip changed bytes:\n got % X\nwant % X", data, original)
	}
}
