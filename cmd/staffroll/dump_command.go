package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"staffroll/internal/staffroll"
)

type recordView struct {
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Opcode  uint8  `json:"opcode"`
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput jsonFlag
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "List the raw records of a file",
		Long:  "List every framed record up to the stop record without decoding fields. Useful for inspecting files that fail to open.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read staff roll: %w", err)
			}
			records, walkErr := staffroll.Records(data)

			views := make([]recordView, 0, len(records))
			for _, rec := range records {
				views = append(views, recordView{
					Offset:  rec.Offset,
					Length:  rec.Len(),
					Opcode:  uint8(rec.Opcode),
					Type:    rec.Opcode.String(),
					Payload: hex.EncodeToString(rec.Payload),
				})
			}

			if jsonOutput {
				if err := writeJSON(cmd, views); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{
						fmt.Sprintf("0x%04X", v.Offset),
						strconv.Itoa(v.Length),
						fmt.Sprintf("0x%02X", v.Opcode),
						v.Type,
						v.Payload,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out, []string{"Offset", "Length", "Opcode", "Type", "Payload"}, rows,
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft}))
			}
			if walkErr != nil {
				return fmt.Errorf("%s: %w", path, walkErr)
			}
			return nil
		},
	}
	jsonOutput.bind(cmd)
	return cmd
}
