package recipe

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrIDsExhausted is returned by Add once every assignable identifier has
// been handed out. math.MaxUint32 is never assigned, so NextID stays strictly
// above every stored id.
var ErrIDsExhausted = errors.New("no recipe identifiers left")

// Store holds recipes in insertion order and hands out identifiers.
type Store struct {
	recipes []Recipe
	nextID  uint32
}

// NewStore returns an empty store whose first identifier is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add appends a new recipe and returns the identifier assigned to it. It
// fails only with ErrIDsExhausted, leaving the store unchanged.
func (s *Store) Add(name string, ingredients, instructions []string, servings uint32) (uint32, error) {
	if s.nextID == math.MaxUint32 {
		return 0, ErrIDsExhausted
	}
	id := s.nextID
	s.recipes = append(s.recipes, Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  cloneLines(ingredients),
		Instructions: cloneLines(instructions),
		Servings:     servings,
	})
	s.nextID++
	return id, nil
}

// All returns a copy of every recipe in storage order.
func (s *Store) All() []Recipe {
	out := make([]Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Clone())
	}
	return out
}

// Get returns a copy of the recipe with the given id.
func (s *Store) Get(id uint32) (Recipe, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Recipe{}, false
	}
	return s.recipes[idx].Clone(), true
}

// Update replaces the name, ingredients, instructions, and servings of the
// recipe with the given id. It reports false and changes nothing when no such
// recipe exists.
func (s *Store) Update(id uint32, name string, ingredients, instructions []string, servings uint32) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	r := &s.recipes[idx]
	r.Name = name
	r.Ingredients = cloneLines(ingredients)
	r.Instructions = cloneLines(instructions)
	r.Servings = servings
	return true
}

// Delete removes the recipe with the given id, keeping the order of the
// remaining records. It reports whether anything was removed.
func (s *Store) Delete(id uint32) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.recipes = slices.Delete(s.recipes, idx, idx+1)
	return true
}

// Len returns the number of stored recipes.
func (s *Store) Len() int {
	return len(s.recipes)
}

// NextID returns the identifier the next Add will assign.
func (s *Store) NextID() uint32 {
	return s.nextID
}

// Replace discards the current collection and installs records in its place.
// Identifiers must be pairwise distinct and below math.MaxUint32; on error the
// store is unchanged.
func (s *Store) Replace(records []Recipe) error {
	seen := make(map[uint32]struct{}, len(records))
	next := make([]Recipe, 0, len(records))
	var maxID uint32
	for i, r := range records {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: record %d: duplicate id %d", ErrFormat, i, r.ID)
		}
		if r.ID == math.MaxUint32 {
			return fmt.Errorf("%w: record %d: id %d leaves no room for new recipes", ErrFormat, i, r.ID)
		}
		seen[r.ID] = struct{}{}
		maxID = max(maxID, r.ID)
		next = append(next, r.Clone())
	}

	s.recipes = next
	s.nextID = maxID + 1
	return nil
}

func (s *Store) indexOf(id uint32) int {
	return slices.IndexFunc(s.recipes, func(r Recipe) bool { return r.ID == id })
}
