package recipeform

import (
	"errors"
	"strconv"
	"strings"

	"recipebox/internal/recipe"
)

// ErrNameRequired is returned when a new recipe is submitted without a name.
var ErrNameRequired = errors.New("recipe name is required")

// DefaultServings is used when a new recipe's servings cannot be parsed.
const DefaultServings uint32 = 1

// Draft holds unparsed user input for one recipe.
type Draft struct {
	Name         string
	Ingredients  string
	Instructions string
	Servings     string
}

// Fields are the mutable recipe values ready for recipe.Store.Add or Update.
type Fields struct {
	Name         string
	Ingredients  []string
	Instructions []string
	Servings     uint32
}

// FromRecipe fills a draft with the stored values of r for editing.
func FromRecipe(r recipe.Recipe) Draft {
	return Draft{
		Name:         r.Name,
		Ingredients:  strings.Join(r.Ingredients, ", "),
		Instructions: strings.Join(r.Instructions, "\n"),
		Servings:     strconv.FormatUint(uint64(r.Servings), 10),
	}
}

// AddArgs validates the draft for a new recipe. Unparseable servings fall
// back to fallback, or DefaultServings when fallback is zero.
func (d Draft) AddArgs(fallback uint32) (Fields, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Fields{}, ErrNameRequired
	}
	if fallback == 0 {
		fallback = DefaultServings
	}
	return Fields{
		Name:         name,
		Ingredients:  SplitIngredients(d.Ingredients),
		Instructions: SplitInstructions(d.Instructions),
		Servings:     ParseServings(d.Servings, fallback),
	}, nil
}

// UpdateArgs builds replacement values for previous. Unparseable servings
// keep the stored value; an empty name keeps the stored name.
func (d Draft) UpdateArgs(previous recipe.Recipe) Fields {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = previous.Name
	}
	return Fields{
		Name:         name,
		Ingredients:  SplitIngredients(d.Ingredients),
		Instructions: SplitInstructions(d.Instructions),
		Servings:     ParseServings(d.Servings, previous.Servings),
	}
}

// SplitIngredients splits on commas and trims every entry. Entries that are
// blank after trimming are dropped rather than kept as empty strings, so
// "flour,,egg," yields two ingredients and empty text yields none.
func SplitIngredients(text string) []string {
	return splitTrimmed(text, ",")
}

// SplitInstructions splits on line breaks and trims every line. Blank lines
// are dropped the same way SplitIngredients drops blank entries, so a
// trailing newline does not add an empty step.
func SplitInstructions(text string) []string {
	return splitTrimmed(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// ParseServings parses a non-negative decimal count, returning fallback for
// anything that does not fit a uint32.
func ParseServings(text string, fallback uint32) uint32 {
	value, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(value)
}

func splitTrimmed(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
