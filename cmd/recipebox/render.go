package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"recipebox/internal/config"
	"recipebox/internal/recipe"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiBlue  = "\x1b[34m"
)

const detailLabelWidth = 10

func shouldColorize(writer io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// displayName renders a recipe name for terminal output. Stored names are
// never rewritten.
func displayName(name string, titleCase bool) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "(untitled)"
	}
	if titleCase {
		return cases.Title(language.Und).String(name)
	}
	return name
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", title)
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func renderHeading(title string, colorize bool) string {
	if colorize {
		return ansiBold + title + ansiReset
	}
	return title
}

func renderRecipeDetail(r recipe.Recipe, display config.Display, colorize bool) []string {
	lines := renderSectionHeader(displayName(r.Name, display.TitleCaseNames), colorize)
	lines = append(lines,
		fmt.Sprintf("%-*s %d", detailLabelWidth, "ID:", r.ID),
		fmt.Sprintf("%-*s %d", detailLabelWidth, "Servings:", r.Servings),
		"",
		renderHeading("Ingredients", colorize),
	)
	if len(r.Ingredients) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, ingredient := range r.Ingredients {
		lines = append(lines, "  - "+ingredient)
	}
	lines = append(lines, "", renderHeading("Instructions", colorize))
	if len(r.Instructions) == 0 {
		lines = append(lines, "  (none)")
	}
	for i, step := range r.Instructions {
		lines = append(lines, "  "+strconv.Itoa(i+1)+". "+step)
	}
	return lines
}

// writeRecipeJSON prints r as one indented JSON object with the same field
// names the store file uses.
func writeRecipeJSON(w io.Writer, r recipe.Recipe) error {
	data, err := json.MarshalIndent(r.Clone(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode recipe %d: %w", recipe.ErrFormat, r.ID, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
