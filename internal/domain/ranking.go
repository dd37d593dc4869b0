package domain

import (
	"slices"
)

// ScoredItem is a catalog item with its component and final scores.
// Rank is 1-based and only set on ranked results.
type ScoredItem struct {
	Item     CatalogItem
	Semantic float64
	Genre    float64
	Mood     float64
	Final    float64
	Rank     int
}

// ScoreItems combines the semantic scores with the profile preferences for every item.
// Items missing from semantic get NeutralScore as their semantic component.
func ScoreItems(items []CatalogItem, semantic map[string]float64, profile UserProfile, w Weights) []ScoredItem {
	res := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		sem, ok := semantic[item.ID]
		if !ok {
			sem = NeutralScore
		}
		sem = Clamp01(sem)
		genre := GenreScore(item, profile)
		mood := MoodScore(item, profile)
		res = append(res, ScoredItem{
			Item:     item,
			Semantic: sem,
			Genre:    genre,
			Mood:     mood,
			Final:    w.Combine(sem, genre, mood),
		})
	}
	return res
}

// Rank orders items by final score descending, breaking ties by ascending catalog id,
// and returns the first k of them with their rank set. k larger than the input returns everything.
// The input slice is left untouched.
func Rank(items []ScoredItem, k int) []ScoredItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b ScoredItem) int {
		switch {
		case a.Final > b.Final:
			return -1
		case a.Final < b.Final:
			return 1
		default:
			return CompareItemIDs(a.Item.ID, b.Item.ID)
		}
	})
	if k < 0 {
		k = 0
	}
	if k < len(sorted) {
		sorted = sorted[:k]
	}
	for i := range sorted {
		sorted[i].Rank = i + 1
	}
	return sorted
}
