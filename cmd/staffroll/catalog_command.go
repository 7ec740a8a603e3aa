package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"staffroll/internal/staffroll"
)

type catalogField struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Max   uint64 `json:"max,omitempty"`
}

type catalogEntry struct {
	Opcode      uint8          `json:"opcode"`
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Fields      []catalogField `json:"fields"`
}

func newCatalogCommand() *cobra.Command {
	var jsonOutput jsonFlag
	cmd := &cobra.Command{
		Use:         "catalog",
		Short:       "List the command types that can be added",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := staffroll.Catalog()
			if jsonOutput {
				entries := make([]catalogEntry, 0, len(descs))
				for _, d := range descs {
					fields := make([]catalogField, 0, len(d.Fields))
					for _, f := range d.Fields {
						fields = append(fields, catalogField{Name: f.Name, Label: f.Label, Kind: f.Kind.String(), Max: f.Max})
					}
					entries = append(entries, catalogEntry{
						Opcode:      uint8(d.Opcode),
						Type:        d.Key,
						Name:        d.Name,
						Description: d.Description,
						Fields:      fields,
					})
				}
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(descs))
			for _, d := range descs {
				rows = append(rows, []string{
					fmt.Sprintf("0x%02X", uint8(d.Opcode)),
					d.Key,
					fieldSummary(d.Fields),
					d.Description,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Opcode", "Type", "Fields", "Description"}, rows, nil))
			return nil
		},
	}
	jsonOutput.bind(cmd)
	return cmd
}

func fieldSummary(fields []staffroll.FieldSpec) string {
	if len(fields) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f.Kind {
		case staffroll.FieldU8, staffroll.FieldU16:
			parts = append(parts, fmt.Sprintf("%s (0-%d)", f.Name, f.Max))
		default:
			parts = append(parts, f.Name)
		}
	}
	return strings.Join(parts, ", ")
}
