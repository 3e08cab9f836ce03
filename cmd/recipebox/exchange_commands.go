package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"recipebox/internal/config"
	"recipebox/internal/cookbook"
	"recipebox/internal/fileutil"
	"recipebox/internal/logging"
	"recipebox/internal/recipe"
)

// exchangeFormat resolves --format, falling back to the file extension and
// then to JSON.
func exchangeFormat(flag, path string) (recipe.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return recipe.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return recipe.FormatYAML, nil
	default:
		return recipe.FormatJSON, nil
	}
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every recipe as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(output)
			if target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return err
				}
				target = expanded
			}
			fmtValue, err := exchangeFormat(format, target)
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, true, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				records := cb.Store().All()
				if target == "" {
					return recipe.Encode(cmd.OutOrStdout(), records, fmtValue)
				}
				var buf bytes.Buffer
				if err := recipe.Encode(&buf, records, fmtValue); err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(target, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("%w: write export %s: %w", recipe.ErrIO, target, err)
				}
				logger.Info("collection exported",
					logging.Args(logging.String("path", target), logging.String("format", string(fmtValue)), logging.Int("recipes", len(records)))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", pluralize(len(records), "recipe", "recipes"), target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Add recipes from a JSON or YAML file under fresh ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			fmtValue, err := exchangeFormat(format, path)
			if err != nil {
				return err
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("%w: open %s: %w", recipe.ErrIO, path, err)
			}
			defer file.Close()

			records, err := recipe.Decode(file, fmtValue)
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, false, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				store := cb.Store()
				ids := make([]uint32, 0, len(records))
				for _, r := range records {
					id, err := store.Add(r.Name, r.Ingredients, r.Instructions, r.Servings)
					if err != nil {
						return fmt.Errorf("import %s: %w", path, err)
					}
					ids = append(ids, id)
				}
				if err := cb.Commit(cmd.Context()); err != nil {
					return err
				}
				logger.Info("recipes imported",
					logging.Args(logging.String("path", path), logging.Int("recipes", len(ids)))...)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %s from %s\n", pluralize(len(ids), "recipe", "recipes"), path)
				if len(ids) > 0 {
					fmt.Fprintf(out, "New ids: %d-%d\n", ids[0], ids[len(ids)-1])
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json or yaml (default from extension)")
	return cmd
}
