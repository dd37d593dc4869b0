package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogIndex(t *testing.T) {
	tests := map[string]struct {
		items         []CatalogItem
		expectErr     bool
		expectErrItem string
	}{
		"success": {
			items: []CatalogItem{
				{ID: "1", Title: "Inception", Vector: []float64{1, 0}},
				{ID: "2", Title: "Amelie", Vector: []float64{0, 1}},
			},
		},
		"empty-catalog": {
			items:     nil,
			expectErr: true,
		},
		"missing-embedding": {
			items: []CatalogItem{
				{ID: "1", Vector: []float64{1, 0}},
				{ID: "2"},
			},
			expectErr:     true,
			expectErrItem: "2",
		},
		"dimension-mismatch": {
			items: []CatalogItem{
				{ID: "1", Vector: []float64{1, 0}},
				{ID: "2", Vector: []float64{1, 0, 0}},
			},
			expectErr:     true,
			expectErrItem: "2",
		},
		"duplicate-id": {
			items: []CatalogItem{
				{ID: "1", Vector: []float64{1, 0}},
				{ID: "1", Vector: []float64{0, 1}},
			},
			expectErr:     true,
			expectErrItem: "1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			idx, err := NewCatalogIndex(tt.items)
			if tt.expectErr {
				var buildErr *IndexBuildErr
				require.ErrorAs(t, err, &buildErr)
				assert.Equal(t, tt.expectErrItem, buildErr.ItemID)
				assert.Nil(t, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.items), idx.Len())
			assert.Equal(t, 2, idx.Dimension())
		})
	}
}

func TestCatalogIndex_IsReadOnly(t *testing.T) {
	source := []CatalogItem{
		{ID: "1", Title: "Inception", Genres: []string{"Science-Fiction"}, Vector: []float64{1, 0}},
	}
	idx, err := NewCatalogIndex(source)
	require.NoError(t, err)

	source[0].Vector[0] = 42
	vec, ok := idx.VectorOf("1")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0}, vec)

	vec[1] = 42
	all := idx.AllItems()
	assert.Equal(t, []IndexedVector{{ID: "1", Vector: []float64{1, 0}}}, all)

	item, ok := idx.Item("1")
	require.True(t, ok)
	item.Genres[0] = "Comedy"
	again, _ := idx.Item("1")
	assert.Equal(t, []string{"Science-Fiction"}, again.Genres)

	_, ok = idx.VectorOf("unknown")
	assert.False(t, ok)
}

func TestCatalogItem_IndexingText(t *testing.T) {
	item := CatalogItem{
		Title:       "Inception",
		Year:        2010,
		Creator:     "Christopher Nolan",
		Genres:      []string{"Science-Fiction", "Thriller"},
		Description: "A thief enters dreams.",
		Keywords:    []string{"dreams", "heist"},
		Moods:       []string{"Intellectual"},
	}

	assert.Equal(t,
		"Inception (2010). Directed by Christopher Nolan. Genre: Science-Fiction, Thriller. Description: A thief enters dreams. Keywords: dreams, heist. Mood: Intellectual.",
		item.IndexingText(),
	)
	assert.Equal(t, Era2010s, item.Era())
}

func TestCompareItemIDs(t *testing.T) {
	tests := map[string]struct {
		a, b     string
		expected int
	}{
		"numeric-less":    {a: "2", b: "10", expected: -1},
		"numeric-greater": {a: "10", b: "2", expected: 1},
		"numeric-equal":   {a: "7", b: "7", expected: 0},
		"leading-zero":    {a: "07", b: "7", expected: -1},
		"lexicographic":   {a: "a10", b: "a2", expected: -1},
		"numeric-first":   {a: "10", b: "1a", expected: -1},
		"text-after":      {a: "1a", b: "2", expected: 1},
		"mixed":           {a: "10", b: "a", expected: -1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareItemIDs(tt.a, tt.b))
			assert.Equal(t, -tt.expected, CompareItemIDs(tt.b, tt.a))
		})
	}
}

func TestCompareItemIDs_IsATotalOrder(t *testing.T) {
	ids := []string{"2", "10", "1a", "a", "07", "7", "b2", "1", "-3"}

	for _, a := range ids {
		for _, b := range ids {
			for _, c := range ids {
				if CompareItemIDs(a, b) < 0 && CompareItemIDs(b, c) < 0 {
					assert.Negative(t, CompareItemIDs(a, c), "%s < %s < %s", a, b, c)
				}
			}
		}
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, CompareItemIDs)
	assert.Equal(t, []string{"-3", "1", "2", "07", "7", "10", "1a", "a", "b2"}, sorted)
}
