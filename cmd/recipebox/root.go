package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"recipebox/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var storeFlag string

	ctx := newCommandContext(&configFlag, &storeFlag)

	rootCmd := &cobra.Command{
		Use:           "recipebox",
		Short:         "Keep a local collection of recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			runCtx := logging.WithCommand(cmd.Context(), cmd.Name())
			runCtx = logging.WithInvocationID(runCtx, uuid.NewString())
			cmd.SetContext(runCtx)
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Recipe store file for the configured backend")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newSaveCommand(ctx))
	rootCmd.AddCommand(newLoadCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
