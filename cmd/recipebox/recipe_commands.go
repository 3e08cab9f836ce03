package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"recipebox/internal/cookbook"
	"recipebox/internal/logging"
	"recipebox/internal/recipe"
	"recipebox/internal/recipeform"
)

var errRecipeNotFound = errors.New("recipe not found")

type recipeFlags struct {
	name         string
	ingredients  string
	instructions string
	servings     string
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Recipe name")
	cmd.Flags().StringVarP(&f.ingredients, "ingredients", "i", "", "Comma-separated ingredients")
	cmd.Flags().StringVarP(&f.instructions, "instructions", "s", "", "Instructions, one step per line")
	cmd.Flags().StringVar(&f.servings, "servings", "", "Number of servings")
}

// applyTo overlays the flags the user actually set onto draft.
func (f *recipeFlags) applyTo(cmd *cobra.Command, draft recipeform.Draft) recipeform.Draft {
	if cmd.Flags().Changed("name") {
		draft.Name = f.name
	}
	if cmd.Flags().Changed("ingredients") {
		draft.Ingredients = f.ingredients
	}
	if cmd.Flags().Changed("instructions") {
		draft.Instructions = f.instructions
	}
	if cmd.Flags().Changed("servings") {
		draft.Servings = f.servings
	}
	return draft
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags recipeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fields, err := flags.applyTo(cmd, recipeform.Draft{}).AddArgs(cfg.DefaultServings())
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, false, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				id, err := cb.Store().Add(fields.Name, fields.Ingredients, fields.Instructions, fields.Servings)
				if err != nil {
					return err
				}
				if err := cb.Commit(cmd.Context()); err != nil {
					return err
				}
				logger.Info("recipe added", logging.Args(logging.RecipeID(id), logging.String("name", fields.Name))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d: %s\n", id, fields.Name)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all recipes in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, true, func(cb *cookbook.Cookbook, _ *slog.Logger) error {
				records := cb.Store().All()
				if asJSON {
					return recipe.Encode(cmd.OutOrStdout(), records, recipe.FormatJSON)
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No recipes yet. Add one with `recipebox add --name ...`.")
					return nil
				}
				fmt.Fprintln(out, renderRecipeTable(records, cfg.Display))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, true, func(cb *cookbook.Cookbook, _ *slog.Logger) error {
				r, ok := cb.Store().Get(id)
				if !ok {
					return fmt.Errorf("%w: %d", errRecipeNotFound, id)
				}
				if asJSON {
					return writeRecipeJSON(cmd.OutOrStdout(), r)
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out, cfg.Display.Color)
				for _, line := range renderRecipeDetail(r, cfg.Display, colorize) {
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var flags recipeFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a recipe; omitted flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, false, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				store := cb.Store()
				previous, ok := store.Get(id)
				if !ok {
					return fmt.Errorf("%w: %d", errRecipeNotFound, id)
				}
				fields := flags.applyTo(cmd, recipeform.FromRecipe(previous)).UpdateArgs(previous)
				if !store.Update(id, fields.Name, fields.Ingredients, fields.Instructions, fields.Servings) {
					return fmt.Errorf("%w: %d", errRecipeNotFound, id)
				}
				if err := cb.Commit(cmd.Context()); err != nil {
					return err
				}
				logger.Info("recipe updated", logging.Args(logging.RecipeID(id))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %d: %s\n", id, fields.Name)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCookbook(cmd, false, func(cb *cookbook.Cookbook, logger *slog.Logger) error {
				if !cb.Store().Delete(id) {
					return fmt.Errorf("%w: %d", errRecipeNotFound, id)
				}
				if err := cb.Commit(cmd.Context()); err != nil {
					return err
				}
				logger.Info("recipe deleted", logging.Args(logging.RecipeID(id))...)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d\n", id)
				return nil
			})
		},
	}
}
