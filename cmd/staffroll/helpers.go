package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staffroll/internal/config"
	"staffroll/internal/document"
	"staffroll/internal/staffroll"
	"staffroll/internal/textenc"
)

// mutationFlags are shared by every command that edits a file.
type mutationFlags struct {
	output string
	dryRun bool
}

func (m *mutationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&m.output, "output", "o", "", "Write the result to this path instead of the input file")
	cmd.Flags().BoolVar(&m.dryRun, "dry-run", false, "Print the resulting command list without saving")
}

// parseIndex converts a 1-based position from the command line. limit is the
// largest accepted position.
func parseIndex(arg string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: expected a number", arg)
	}
	if n < 1 || n > limit {
		if limit == 0 {
			return 0, fmt.Errorf("position %d out of range: the file has no commands", n)
		}
		return 0, fmt.Errorf("position %d out of range (1-%d)", n, limit)
	}
	return n - 1, nil
}

func resolvePath(arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return "", errors.New("file path is required")
	}
	return config.ExpandPath(path)
}

func openDocument(ctx *commandContext, cmd *cobra.Command, arg string) (*document.Document, error) {
	path, err := resolvePath(arg)
	if err != nil {
		return nil, err
	}
	return document.Open(path, ctx.documentOptions(cmd))
}

// finishMutation saves doc according to flags and reports summary on stdout.
func finishMutation(cmd *cobra.Command, doc *document.Document, flags mutationFlags, summary string) error {
	out := cmd.OutOrStdout()
	if flags.dryRun {
		fmt.Fprintln(out, renderCommandList(out, doc.Commands()))
		fmt.Fprintf(out, "%s (dry run, not saved)\n", summary)
		return nil
	}
	if target := strings.TrimSpace(flags.output); target != "" {
		path, err := config.ExpandPath(target)
		if err != nil {
			return err
		}
		if err := doc.SaveAs(cmd.Context(), path); err != nil {
			return err
		}
	} else if err := doc.Save(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s; saved %s\n", summary, doc.Path)
	return nil
}

func commandLabel(cmd staffroll.Command) string {
	return textenc.FromFile(staffroll.Summary(cmd))
}

func renderCommandList(w io.Writer, cmds []staffroll.Command) string {
	if len(cmds) == 0 {
		return "No commands"
	}
	rows := make([][]string, 0, len(cmds))
	for i, c := range cmds {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			staffroll.Describe(c).Key,
			commandLabel(c),
		})
	}
	return renderTable(w, []string{"#", "Type", "Command"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}
