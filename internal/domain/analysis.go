package domain

import (
	"slices"
	"sort"
)

// The analysis thresholds are cosine similarities (0.4, 0.5 and 0.7) moved onto the
// [0, 1] semantic score, (cos+1)/2.
const (
	// CoverageTopN is the number of best semantic matches used by CoverageScore.
	CoverageTopN = 10
	// DefaultWeakCategoryThreshold is the mean semantic score below which a category is weak.
	DefaultWeakCategoryThreshold = (0.4 + 1) / 2
	// DefaultDistributionThreshold is the minimal semantic score counted by CategoryDistribution.
	DefaultDistributionThreshold = (0.5 + 1) / 2

	highAffinityThreshold   = (0.7 + 1) / 2
	mediumAffinityThreshold = (0.5 + 1) / 2
)

// CoverageStats summarizes how the catalog relates to a profile.
type CoverageStats struct {
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	Max            float64 `json:"max"`
	Min            float64 `json:"min"`
	HighAffinity   int     `json:"high_affinity"`
	MediumAffinity int     `json:"medium_affinity"`
	LowAffinity    int     `json:"low_affinity"`
	Total          int     `json:"total"`
}

// CategoryScore is the mean similarity of one catalog category.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// CoverageScore takes the CoverageTopN items with the best semantic score and averages
// their final scores with harmonic weights 1/(i+1), so better matches count more.
func CoverageScore(items []ScoredItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b ScoredItem) int {
		switch {
		case a.Semantic > b.Semantic:
			return -1
		case a.Semantic < b.Semantic:
			return 1
		default:
			return CompareItemIDs(a.Item.ID, b.Item.ID)
		}
	})
	if len(sorted) > CoverageTopN {
		sorted = sorted[:CoverageTopN]
	}

	var weighted, weights float64
	for i, item := range sorted {
		w := 1 / float64(i+1)
		weighted += w * item.Final
		weights += w
	}
	return Clamp01(weighted / weights)
}

// WeakCategories returns the categories whose mean semantic score is below threshold,
// weakest first.
func WeakCategories(items []ScoredItem, threshold float64) []string {
	means := categoryMeans(items, func(ScoredItem) bool { return true })
	var weak []CategoryScore
	for _, m := range means {
		if m.Score < threshold {
			weak = append(weak, m)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score < weak[j].Score
		}
		return weak[i].Category < weak[j].Category
	})
	res := make([]string, len(weak))
	for i, w := range weak {
		res[i] = w.Category
	}
	return res
}

// CategoryDistribution returns the mean semantic score per category, only counting
// items at or above threshold, best category first.
func CategoryDistribution(items []ScoredItem, threshold float64) []CategoryScore {
	dist := categoryMeans(items, func(s ScoredItem) bool { return s.Semantic >= threshold })
	sort.SliceStable(dist, func(i, j int) bool {
		if dist[i].Score != dist[j].Score {
			return dist[i].Score > dist[j].Score
		}
		return dist[i].Category < dist[j].Category
	})
	return dist
}

// ComputeCoverageStats summarizes the semantic scores of every item.
func ComputeCoverageStats(items []ScoredItem) CoverageStats {
	if len(items) == 0 {
		return CoverageStats{}
	}
	values := make([]float64, len(items))
	stats := CoverageStats{Total: len(items)}
	var sum float64
	for i, item := range items {
		values[i] = item.Semantic
		sum += item.Semantic
		switch {
		case item.Semantic >= highAffinityThreshold:
			stats.HighAffinity++
		case item.Semantic >= mediumAffinityThreshold:
			stats.MediumAffinity++
		default:
			stats.LowAffinity++
		}
	}
	slices.Sort(values)
	stats.Mean = sum / float64(len(values))
	stats.Min = values[0]
	stats.Max = values[len(values)-1]
	if mid := len(values) / 2; len(values)%2 == 0 {
		stats.Median = (values[mid-1] + values[mid]) / 2
	} else {
		stats.Median = values[mid]
	}
	return stats
}

func categoryMeans(items []ScoredItem, keep func(ScoredItem) bool) []CategoryScore {
	sums := map[string]float64{}
	counts := map[string]int{}
	var order []string
	for _, item := range items {
		if item.Item.Category == "" || !keep(item) {
			continue
		}
		if _, seen := counts[item.Item.Category]; !seen {
			order = append(order, item.Item.Category)
		}
		sums[item.Item.Category] += item.Semantic
		counts[item.Item.Category]++
	}
	res := make([]CategoryScore, len(order))
	for i, c := range order {
		res[i] = CategoryScore{Category: c, Score: sums[c] / float64(counts[c])}
	}
	return res
}
