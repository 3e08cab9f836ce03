package recipe

import "slices"

// Recipe is a single stored recipe. ID is assigned by the Store and never
// changes afterwards.
type Recipe struct {
	ID           uint32   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Servings     uint32   `json:"servings" yaml:"servings"`
}

// Clone returns a copy that shares no slice storage with r. Nil slices become
// empty so the encoded shape is always an array.
func (r Recipe) Clone() Recipe {
	r.Ingredients = cloneLines(r.Ingredients)
	r.Instructions = cloneLines(r.Instructions)
	return r
}

// Equal reports whether both records carry the same id and field values.
func (r Recipe) Equal(other Recipe) bool {
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.Servings == other.Servings &&
		slices.Equal(r.Ingredients, other.Ingredients) &&
		slices.Equal(r.Instructions, other.Instructions)
}

func cloneLines(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return slices.Clone(lines)
}
