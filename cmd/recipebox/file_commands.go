package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"recipebox/internal/config"
	"recipebox/internal/cookbook"
	"recipebox/internal/logging"
)

func newSaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save PATH",
		Short: "Save the whole collection to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, true, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				store := cb.Store()
				if err := store.SaveFile(path); err != nil {
					return err
				}
				logger.Info("collection saved",
					logging.Args(logging.String("path", path), logging.Int("recipes", store.Len()))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", pluralize(store.Len(), "recipe", "recipes"), path)
				return nil
			})
		},
	}
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load PATH",
		Short: "Replace the collection with the contents of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, false, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				store := cb.Store()
				if err := store.LoadFile(path); err != nil {
					return err
				}
				if err := cb.Commit(cmd.Context()); err != nil {
					return err
				}
				logger.Info("collection loaded",
					logging.Args(logging.String("path", path), logging.Int("recipes", store.Len()))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s from %s (next id %d)\n",
					pluralize(store.Len(), "recipe", "recipes"), path, store.NextID())
				return nil
			})
		},
	}
}
