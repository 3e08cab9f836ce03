package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"recipebox/internal/config"
	"recipebox/internal/recipe"
)

// Column numbers are 1-based in go-pretty.
const recipeNameColumn = 2

// renderRecipeTable lists recipes one per row in storage order. Every column
// except the name holds a number and is right-aligned.
func renderRecipeTable(records []recipe.Recipe, display config.Display) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Servings", "Ingredients", "Steps"})

	for _, r := range records {
		tw.AppendRow(table.Row{
			strconv.FormatUint(uint64(r.ID), 10),
			displayName(r.Name, display.TitleCaseNames),
			strconv.FormatUint(uint64(r.Servings), 10),
			strconv.Itoa(len(r.Ingredients)),
			strconv.Itoa(len(r.Instructions)),
		})
	}
	tw.AppendFooter(table.Row{"", pluralize(len(records), "recipe", "recipes")})

	configs := make([]table.ColumnConfig, 0, 5)
	for number := 1; number <= 5; number++ {
		align := text.AlignRight
		if number == recipeNameColumn {
			align = text.AlignLeft
		}
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
