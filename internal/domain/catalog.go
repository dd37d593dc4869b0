package domain

import (
	"cmp"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// CatalogItem is one recommendable film of the fixed catalog.
type CatalogItem struct {
	ID          string
	Title       string
	Creator     string
	Year        int
	Description string
	Keywords    []string
	Genres      []string
	Moods       []string
	Category    string
	Vector      []float64
}

// IndexingText returns the text used to embed the item in the semantic space.
func (ci CatalogItem) IndexingText() string {
	return fmt.Sprintf(
		"%s (%d). Directed by %s. Genre: %s. Description: %s Keywords: %s. Mood: %s.",
		ci.Title,
		ci.Year,
		ci.Creator,
		strings.Join(ci.Genres, ", "),
		ci.Description,
		strings.Join(ci.Keywords, ", "),
		strings.Join(ci.Moods, ", "),
	)
}

// Era returns the period bucket the item belongs to.
func (ci CatalogItem) Era() Era {
	return EraOf(ci.Year)
}

func (ci CatalogItem) clone() CatalogItem {
	c := ci
	c.Keywords = append([]string(nil), ci.Keywords...)
	c.Genres = append([]string(nil), ci.Genres...)
	c.Moods = append([]string(nil), ci.Moods...)
	c.Vector = append([]float64(nil), ci.Vector...)
	return c
}

// CatalogSource loads the raw catalog items, without vectors.
type CatalogSource interface {
	LoadItems(ctx context.Context) ([]CatalogItem, error)
}

// IndexedVector pairs a catalog item id with its embedding.
type IndexedVector struct {
	ID     string
	Vector []float64
}

// CatalogIndex is the read-only, fully vectorized catalog.
// It is safe for concurrent use because it is never mutated after NewCatalogIndex returns.
type CatalogIndex struct {
	items     []CatalogItem
	byID      map[string]int
	dimension int
}

// NewCatalogIndex validates the vectorized items and builds the index.
// Every item must carry a non-empty vector and all vectors must share the same dimension.
func NewCatalogIndex(items []CatalogItem) (*CatalogIndex, error) {
	if len(items) == 0 {
		return nil, NewIndexBuildErr("", "catalog is empty")
	}

	idx := &CatalogIndex{
		items: make([]CatalogItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, NewIndexBuildErr("", "item without id")
		}
		if _, dup := idx.byID[item.ID]; dup {
			return nil, NewIndexBuildErr(item.ID, "duplicate item id")
		}
		if len(item.Vector) == 0 {
			return nil, NewIndexBuildErr(item.ID, "item has no embedding")
		}
		if idx.dimension == 0 {
			idx.dimension = len(item.Vector)
		}
		if len(item.Vector) != idx.dimension {
			return nil, NewIndexBuildErr(item.ID, fmt.Sprintf(
				"embedding dimension %d differs from catalog dimension %d", len(item.Vector), idx.dimension,
			))
		}
		idx.byID[item.ID] = len(idx.items)
		idx.items = append(idx.items, item.clone())
	}
	return idx, nil
}

// VectorOf returns a copy of the embedding of the given item.
func (ci *CatalogIndex) VectorOf(id string) ([]float64, bool) {
	i, ok := ci.byID[id]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), ci.items[i].Vector...), true
}

// AllItems returns every (id, vector) pair in catalog order.
func (ci *CatalogIndex) AllItems() []IndexedVector {
	res := make([]IndexedVector, len(ci.items))
	for i, item := range ci.items {
		res[i] = IndexedVector{ID: item.ID, Vector: append([]float64(nil), item.Vector...)}
	}
	return res
}

// Item returns a copy of the catalog item with the given id.
func (ci *CatalogIndex) Item(id string) (CatalogItem, bool) {
	i, ok := ci.byID[id]
	if !ok {
		return CatalogItem{}, false
	}
	return ci.items[i].clone(), true
}

// Items returns copies of all catalog items in catalog order.
func (ci *CatalogIndex) Items() []CatalogItem {
	res := make([]CatalogItem, len(ci.items))
	for i, item := range ci.items {
		res[i] = item.clone()
	}
	return res
}

// Len returns the number of indexed items.
func (ci *CatalogIndex) Len() int {
	return len(ci.items)
}

// Dimension returns the embedding dimension shared by every item.
func (ci *CatalogIndex) Dimension() int {
	return ci.dimension
}

// CompareItemIDs orders catalog ids. Integer ids come first in numeric order,
// ties like "7" and "07" broken by their text. Other ids follow in lexicographic order.
func CompareItemIDs(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
