package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "id,title,creator,year,description,keywords,moods,genres,category\n"

func TestParseCSV(t *testing.T) {
	tests := map[string]struct {
		input          string
		expectedItems  []domain.CatalogItem
		expectBuildErr bool
		expectErr      bool
	}{
		"valid-rows": {
			input: testHeader +
				`1,Inception,Christopher Nolan,2010,"A thief plants an idea, deep in a dream.",dreams|heist,Intellectual|Intense,Science-Fiction|Thriller,Science-Fiction` + "\n" +
				`2,Amelie,Jean-Pierre Jeunet,2001,A shy waitress helps strangers.,paris| whimsy ,Light,Comedy|Romance,` + "\n",
			expectedItems: []domain.CatalogItem{
				{
					ID:          "1",
					Title:       "Inception",
					Creator:     "Christopher Nolan",
					Year:        2010,
					Description: "A thief plants an idea, deep in a dream.",
					Keywords:    []string{"dreams", "heist"},
					Moods:       []string{"Intellectual", "Intense"},
					Genres:      []string{"Science-Fiction", "Thriller"},
					Category:    "Science-Fiction",
				},
				{
					ID:          "2",
					Title:       "Amelie",
					Creator:     "Jean-Pierre Jeunet",
					Year:        2001,
					Description: "A shy waitress helps strangers.",
					Keywords:    []string{"paris", "whimsy"},
					Moods:       []string{"Light"},
					Genres:      []string{"Comedy", "Romance"},
					Category:    "Comedy",
				},
			},
		},
		"reordered-columns-and-empty-lists": {
			input: "title,id,year,creator,description,category,genres,moods,keywords\n" +
				"Memento,7,2000,Christopher Nolan,A man without memory.,Thriller,,,\n",
			expectedItems: []domain.CatalogItem{
				{
					ID:          "7",
					Title:       "Memento",
					Creator:     "Christopher Nolan",
					Year:        2000,
					Description: "A man without memory.",
					Keywords:    []string{},
					Moods:       []string{},
					Genres:      []string{},
					Category:    "Thriller",
				},
			},
		},
		"empty-input": {
			input:          "",
			expectBuildErr: true,
		},
		"header-only": {
			input:          testHeader,
			expectBuildErr: true,
		},
		"missing-column": {
			input:          "id,title,creator,year,description,keywords,moods,genres\n1,A,B,2000,C,,,\n",
			expectBuildErr: true,
		},
		"empty-id": {
			input:          testHeader + ",Inception,Nolan,2010,desc,,,,\n",
			expectBuildErr: true,
		},
		"empty-title": {
			input:          testHeader + "1,,Nolan,2010,desc,,,,\n",
			expectBuildErr: true,
		},
		"empty-description": {
			input:          testHeader + "1,Inception,Nolan,2010,,,,,\n",
			expectBuildErr: true,
		},
		"non-integer-year": {
			input:          testHeader + "1,Inception,Nolan,twenty ten,desc,,,,\n",
			expectBuildErr: true,
		},
		"duplicate-id": {
			input:          testHeader + "1,Inception,Nolan,2010,desc,,,,\n1,Memento,Nolan,2000,desc,,,,\n",
			expectBuildErr: true,
		},
		"wrong-field-count": {
			input:     testHeader + "1,Inception,Nolan,2010\n",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items, err := ParseCSV(strings.NewReader(tt.input))

			if tt.expectBuildErr || tt.expectErr {
				assert.Error(t, err)
				var buildErr *domain.IndexBuildErr
				assert.Equal(t, tt.expectBuildErr, errors.As(err, &buildErr))
				assert.Nil(t, items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedItems, items)
		})
	}
}

func TestEmbeddedCSVSource_LoadItems(t *testing.T) {
	items, err := NewEmbeddedCSVSource().LoadItems(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Description)
		assert.NotEmpty(t, item.Genres, item.ID)
		assert.NotEmpty(t, item.Moods, item.ID)
		assert.NotEmpty(t, item.Category, item.ID)
		assert.Positive(t, item.Year)
	}
	assert.Equal(t, "Inception", items[0].Title)
}

func TestFileCSVSource_LoadItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "films.csv")
	require.NoError(t, os.WriteFile(path, []byte(testHeader+"1,Inception,Nolan,2010,desc,dreams,Intense,Thriller,Thriller\n"), 0o600))

	items, err := NewFileCSVSource(path).LoadItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Inception", items[0].Title)

	_, err = NewFileCSVSource(filepath.Join(dir, "missing.csv")).LoadItems(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
