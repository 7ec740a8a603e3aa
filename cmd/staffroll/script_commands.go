package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"staffroll/internal/config"
	"staffroll/internal/document"
	"staffroll/internal/logging"
	"staffroll/internal/script"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a file's commands as an editable TOML, YAML or JSON script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			format, err := exportFormat(ctx, formatFlag, outputPath)
			if err != nil {
				return err
			}
			data, err := script.Marshal(script.FromCommands(doc.Commands()), format)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" || target == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			path, err := config.ExpandPath(target)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write script: %w", err)
			}
			ctx.commandLogger(cmd).Info("script exported",
				logging.String(logging.FieldPath, path),
				logging.String("format", string(format)),
				logging.Int("commands", doc.Len()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d commands to %s\n", doc.Len(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&formatFlag, "format", "", "Script format: toml, yaml or json (default from the output extension, then editor.script_format)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the script to this path instead of stdout")
	return cmd
}

func exportFormat(ctx *commandContext, flag, outputPath string) (script.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return script.ParseFormat(flag)
	}
	if f, ok := script.FormatFromPath(outputPath); ok {
		return f, nil
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return "", err
	}
	return script.ParseFormat(cfg.Editor.ScriptFormat)
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:   "import SCRIPT -o FILE",
		Short: "Build a staff roll file from a TOML, YAML or JSON script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(flags.output) == "" && !flags.dryRun {
				return errors.New("--output is required")
			}
			source, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			format, ok := script.FormatFromPath(source)
			if strings.TrimSpace(formatFlag) != "" {
				if format, err = script.ParseFormat(formatFlag); err != nil {
					return err
				}
			} else if !ok {
				return fmt.Errorf("cannot infer script format from %s (use --format)", source)
			}

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			s, err := script.Unmarshal(data, format)
			if err != nil {
				return err
			}
			cmds, err := s.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}

			doc := document.New("", ctx.documentOptions(cmd))
			for _, c := range cmds {
				if err := doc.Append(c); err != nil {
					return err
				}
			}
			return finishMutation(cmd, doc, flags, fmt.Sprintf("Imported %d commands", len(cmds)))
		},
	}
	cmd.Flags().StringVar(&formatFlag, "format", "", "Script format: toml, yaml or json (default from the extension)")
	flags.register(cmd)
	return cmd
}
