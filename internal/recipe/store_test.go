package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, store *Store, name string, ingredients, instructions []string, servings uint32) uint32 {
	t.Helper()
	id, err := store.Add(name, ingredients, instructions, servings)
	require.NoError(t, err)
	return id
}

func TestStoreAddAssignsIncreasingIDs(t *testing.T) {
	store := NewStore()
	assert.Equal(t, uint32(1), store.NextID())

	var prev uint32
	for i := 0; i < 25; i++ {
		id := mustAdd(t, store, "r", nil, nil, 1)
		assert.Greater(t, id, prev)
		prev = id
	}
	assert.Equal(t, 25, store.Len())
	assert.Equal(t, uint32(26), store.NextID())
}

func TestStoreAddThenGetReturnsFields(t *testing.T) {
	store := NewStore()

	id := mustAdd(t, store, "Pasta", []string{"flour", "egg"}, []string{"Mix", "Boil"}, 2)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, Recipe{
		ID:           id,
		Name:         "Pasta",
		Ingredients:  []string{"flour", "egg"},
		Instructions: []string{"Mix", "Boil"},
		Servings:     2,
	}, got)
}

func TestStoreAddAcceptsEmptyValues(t *testing.T) {
	store := NewStore()

	id := mustAdd(t, store, "", nil, nil, 0)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Empty(t, got.Name)
	assert.NotNil(t, got.Ingredients)
	assert.Empty(t, got.Ingredients)
	assert.NotNil(t, got.Instructions)
	assert.Zero(t, got.Servings)
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "Soup", nil, nil, 4)

	_, ok := store.Get(99)
	assert.False(t, ok)
}

func TestStoreReadsDoNotExposeBackingStorage(t *testing.T) {
	store := NewStore()
	ingredients := []string{"rice"}
	id := mustAdd(t, store, "Risotto", ingredients, []string{"Stir"}, 2)

	ingredients[0] = "changed by caller"

	all := store.All()
	all[0].Name = "mutated"
	all[0].Instructions[0] = "mutated"

	got, ok := store.Get(id)
	require.True(t, ok)
	got.Ingredients[0] = "mutated again"

	again, _ := store.Get(id)
	assert.Equal(t, "Risotto", again.Name)
	assert.Equal(t, []string{"rice"}, again.Ingredients)
	assert.Equal(t, []string{"Stir"}, again.Instructions)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	id := mustAdd(t, store, "Pasta", []string{"flour"}, []string{"Mix"}, 2)
	other := mustAdd(t, store, "Salad", []string{"lettuce"}, []string{"Chop"}, 1)

	ok := store.Update(id, "Fresh Pasta", []string{"flour", "egg", "salt"}, []string{"Knead"}, 4)
	require.True(t, ok)

	got, _ := store.Get(id)
	assert.Equal(t, Recipe{
		ID:           id,
		Name:         "Fresh Pasta",
		Ingredients:  []string{"flour", "egg", "salt"},
		Instructions: []string{"Knead"},
		Servings:     4,
	}, got)

	untouched, _ := store.Get(other)
	assert.Equal(t, "Salad", untouched.Name)
	assert.Equal(t, uint32(3), store.NextID())
}

func TestStoreUpdateMissingLeavesCollection(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "Pasta", []string{"flour"}, []string{"Mix"}, 2)
	before := store.All()

	assert.False(t, store.Update(42, "x", []string{"y"}, []string{"z"}, 9))
	assert.Equal(t, before, store.All())
}

func TestStoreDeletePreservesOrder(t *testing.T) {
	store := NewStore()
	a := mustAdd(t, store, "A", nil, nil, 1)
	b := mustAdd(t, store, "B", nil, nil, 1)
	c := mustAdd(t, store, "C", nil, nil, 1)

	require.True(t, store.Delete(b))
	assert.Equal(t, 2, store.Len())

	_, ok := store.Get(b)
	assert.False(t, ok)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, a, all[0].ID)
	assert.Equal(t, c, all[1].ID)
}

func TestStoreDeleteMissing(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "A", nil, nil, 1)

	assert.False(t, store.Delete(7))
	assert.Equal(t, 1, store.Len())
}

func TestStoreDeleteDoesNotReuseIDs(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "A", nil, nil, 1)
	last := mustAdd(t, store, "B", nil, nil, 1)
	require.True(t, store.Delete(last))

	next := mustAdd(t, store, "C", nil, nil, 1)
	assert.Greater(t, next, last)
}

func TestStoreReplaceRecomputesNextID(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "discarded", nil, nil, 1)

	err := store.Replace([]Recipe{
		{ID: 7, Name: "Seven", Ingredients: []string{}, Instructions: []string{}},
		{ID: 3, Name: "Three", Ingredients: []string{}, Instructions: []string{}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, uint32(8), store.NextID())
	_, ok := store.Get(1)
	assert.False(t, ok, "replace must not merge with the previous collection")
	assert.Equal(t, uint32(8), mustAdd(t, store, "Eight", nil, nil, 1))
}

func TestStoreReplaceEmptyResetsNextID(t *testing.T) {
	store := NewStore()
	mustAdd(t, store, "A", nil, nil, 1)
	mustAdd(t, store, "B", nil, nil, 1)

	require.NoError(t, store.Replace(nil))
	assert.Zero(t, store.Len())
	assert.Equal(t, uint32(1), store.NextID())
}

func TestStoreReplaceRejectsInvalidIDs(t *testing.T) {
	tests := []struct {
		name    string
		records []Recipe
	}{
		{name: "duplicate", records: []Recipe{{ID: 2}, {ID: 5}, {ID: 2}}},
		{name: "max uint32", records: []Recipe{{ID: 4294967295}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore()
			id := mustAdd(t, store, "kept", []string{"a"}, []string{"b"}, 1)

			err := store.Replace(tc.records)
			require.ErrorIs(t, err, ErrFormat)

			assert.Equal(t, 1, store.Len())
			got, ok := store.Get(id)
			require.True(t, ok)
			assert.Equal(t, "kept", got.Name)
			assert.Equal(t, uint32(2), store.NextID())
		})
	}
}

func TestRecipeEqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := Recipe{ID: 1, Name: "x"}
	b := Recipe{ID: 1, Name: "x", Ingredients: []string{}, Instructions: []string{}}
	assert.True(t, a.Equal(b))

	b.Servings = 3
	assert.False(t, a.Equal(b))
}

func TestStoreAddStopsAtTopOfIDRange(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace([]Recipe{{ID: math.MaxUint32 - 2, Name: "high"}}))

	last := mustAdd(t, store, "last", nil, nil, 1)
	assert.Equal(t, uint32(math.MaxUint32-1), last)
	assert.Equal(t, uint32(math.MaxUint32), store.NextID())

	id, err := store.Add("overflow", nil, nil, 1)
	require.ErrorIs(t, err, ErrIDsExhausted)
	assert.Zero(t, id)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, uint32(math.MaxUint32), store.NextID())
	_, ok := store.Get(0)
	assert.False(t, ok)

	for _, r := range store.All() {
		assert.Less(t, r.ID, store.NextID())
	}
}

func TestStoreReplaceAcceptsHighestAssignableID(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace([]Recipe{{ID: math.MaxUint32 - 1, Name: "top"}}))
	assert.Equal(t, uint32(math.MaxUint32), store.NextID())

	_, err := store.Add("more", nil, nil, 1)
	require.ErrorIs(t, err, ErrIDsExhausted)
}
