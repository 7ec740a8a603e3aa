package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staffroll/internal/document"
	"staffroll/internal/logging"
	"staffroll/internal/script"
	"staffroll/internal/staffroll"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Create an empty staff roll file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to replace it)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check %s: %w", path, err)
				}
			}
			doc := document.New(path, ctx.documentOptions(cmd))
			if err := doc.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// commandView is the JSON shape of one listed command.
type commandView struct {
	Index   int    `json:"index"`
	Opcode  uint8  `json:"opcode"`
	Summary string `json:"summary"`
	script.Entry
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput jsonFlag
	cmd := &cobra.Command{
		Use:   "show FILE [N]",
		Short: "List the commands in a file, or the fields of command N",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			cmds := doc.Commands()
			if len(args) == 2 {
				idx, err := parseIndex(args[1], len(cmds))
				if err != nil {
					return err
				}
				return showCommandDetail(cmd, idx, cmds[idx], bool(jsonOutput))
			}

			if jsonOutput {
				entries := script.FromCommands(cmds).Commands
				views := make([]commandView, 0, len(cmds))
				for i, c := range cmds {
					views = append(views, commandView{
						Index:   i + 1,
						Opcode:  uint8(c.Opcode()),
						Summary: commandLabel(c),
						Entry:   entries[i],
					})
				}
				return writeJSON(cmd, views)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCommandList(out, cmds))
			return nil
		},
	}
	jsonOutput.bind(cmd)
	return cmd
}

func showCommandDetail(cmd *cobra.Command, idx int, c staffroll.Command, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, commandView{
			Index:   idx + 1,
			Opcode:  uint8(c.Opcode()),
			Summary: commandLabel(c),
			Entry:   script.FromCommands([]staffroll.Command{c}).Commands[0],
		})
	}
	desc := staffroll.Describe(c)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d. %s (0x%02X)\n", idx+1, desc.Name, uint8(desc.Opcode))
	fmt.Fprintln(out, desc.Description)
	values := document.FieldValues(c)
	if len(values) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v.Spec.Name, v.Spec.Label, v.Value})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Label", "Value"}, rows, nil))
	return nil
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags mutationFlags
	var at int
	cmd := &cobra.Command{
		Use:   "add FILE TYPE [field=value...]",
		Short: "Insert a command (see `staffroll catalog` for types)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, ok := staffroll.LookupKey(args[1])
			if !ok {
				return fmt.Errorf("unknown command type %q (see `staffroll catalog`)", args[1])
			}
			if desc.Opcode == staffroll.OpStop {
				return fmt.Errorf("%w: the stop record is written automatically", staffroll.ErrStopInList)
			}
			c, err := document.SetFields(staffroll.DefaultInstance(desc), args[2:])
			if err != nil {
				return err
			}

			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			idx := doc.Len()
			if cmd.Flags().Changed("at") {
				if idx, err = parseIndex(strconv.Itoa(at), doc.Len()+1); err != nil {
					return err
				}
			}
			if err := doc.Insert(idx, c); err != nil {
				return err
			}
			return finishMutation(cmd, doc, flags, fmt.Sprintf("Added %s at position %d", commandLabel(c), idx+1))
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "1-based position to insert at (default: end of list)")
	flags.register(cmd)
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:     "remove FILE N",
		Aliases: []string{"rm"},
		Short:   "Remove the command at position N",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[1], doc.Len())
			if err != nil {
				return err
			}
			removed, err := doc.Remove(idx)
			if err != nil {
				return err
			}
			return finishMutation(cmd, doc, flags, fmt.Sprintf("Removed %s from position %d", commandLabel(removed), idx+1))
		},
	}
	flags.register(cmd)
	return cmd
}

func newMoveCommand(ctx *commandContext) *cobra.Command {
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:     "move FILE FROM TO",
		Aliases: []string{"mv"},
		Short:   "Move the command at position FROM to position TO",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			from, err := parseIndex(args[1], doc.Len())
			if err != nil {
				return err
			}
			to, err := parseIndex(args[2], doc.Len())
			if err != nil {
				return err
			}
			if err := doc.Move(from, to); err != nil {
				return err
			}
			c, _ := doc.At(to)
			return finishMutation(cmd, doc, flags, fmt.Sprintf("Moved %s to position %d", commandLabel(c), to+1))
		},
	}
	flags.register(cmd)
	return cmd
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:   "set FILE N field=value...",
		Short: "Change fields of the command at position N",
		Long: strings.TrimSpace(`
Change one or more fields of an existing command. Field names are listed by
` + "`staffroll catalog`" + `. Integers accept decimal or 0x-prefixed hex. Use
$'...' quoting in the shell to put line breaks into a set-text body.`),
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[1], doc.Len())
			if err != nil {
				return err
			}
			current, err := doc.At(idx)
			if err != nil {
				return err
			}
			updated, err := document.SetFields(current, args[2:])
			if err != nil {
				return err
			}
			if err := doc.Replace(idx, updated); err != nil {
				return err
			}
			ctx.commandLogger(cmd).Info("command fields updated",
				logging.Int(logging.FieldIndex, idx),
				logging.String(logging.FieldCommandType, staffroll.Describe(updated).Key),
			)
			return finishMutation(cmd, doc, flags, fmt.Sprintf("Updated position %d to %s", idx+1, commandLabel(updated)))
		},
	}
	flags.register(cmd)
	return cmd
}
