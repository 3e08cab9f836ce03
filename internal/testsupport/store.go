package testsupport

import (
	"context"
	"testing"

	"recipebox/internal/config"
	"recipebox/internal/cookbook"
	"recipebox/internal/logging"
	"recipebox/internal/recipe"
)

// MustOpenCookbook opens a writable cookbook for tests and registers cleanup.
func MustOpenCookbook(t testing.TB, cfg *config.Config) *cookbook.Cookbook {
	t.Helper()
	cb, err := cookbook.Open(context.Background(), cfg, logging.NewNop(), cookbook.Options{})
	if err != nil {
		t.Fatalf("open cookbook: %v", err)
	}
	t.Cleanup(func() {
		_ = cb.Close()
	})
	return cb
}

// SeedRecipes adds a small fixed collection to store and returns the new ids
// in insertion order.
func SeedRecipes(t testing.TB, store *recipe.Store) []uint32 {
	t.Helper()
	seeds := []recipe.Recipe{
		{Name: "Pancakes", Ingredients: []string{"flour", "milk", "egg"}, Instructions: []string{"Whisk", "Fry"}, Servings: 4},
		{Name: "Tomato Soup", Ingredients: []string{"tomato", "stock"}, Instructions: []string{"Simmer", "Blend"}, Servings: 2},
		{Name: "Green Salad", Ingredients: []string{"lettuce", "olive oil"}, Instructions: []string{"Toss"}, Servings: 1},
	}
	ids := make([]uint32, 0, len(seeds))
	for _, seed := range seeds {
		id, err := store.Add(seed.Name, seed.Ingredients, seed.Instructions, seed.Servings)
		if err != nil {
			t.Fatalf("seed %q: %v", seed.Name, err)
		}
		ids = append(ids, id)
	}
	return ids
}
