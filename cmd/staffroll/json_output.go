package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// jsonFlag is the --json switch shared by show, catalog and dump.
type jsonFlag bool

func (f *jsonFlag) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar((*bool)(f), "json", false, "Output as JSON")
}

// writeJSON prints v on the command's stdout as indented JSON. Credits text
// is written as-is, so "Sound & Music" is not escaped to \u0026.
func writeJSON(cmd *cobra.Command, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	_, err := buf.WriteTo(cmd.OutOrStdout())
	return err
}
