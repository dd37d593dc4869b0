package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scored(id, category string, semantic, final float64) ScoredItem {
	return ScoredItem{
		Item:     CatalogItem{ID: id, Category: category},
		Semantic: semantic,
		Final:    final,
	}
}

func TestCoverageScore(t *testing.T) {
	tests := map[string]struct {
		items    []ScoredItem
		expected float64
	}{
		"empty": {
			items:    nil,
			expected: 0,
		},
		"single-item": {
			items:    []ScoredItem{scored("1", "Drama", 0.8, 0.7)},
			expected: 0.7,
		},
		"harmonic-weights-follow-semantic-order": {
			items: []ScoredItem{
				scored("1", "Drama", 0.2, 0.3),
				scored("2", "Drama", 0.9, 0.9),
			},
			// weights 1 and 1/2 on finals 0.9 and 0.3
			expected: (0.9*1 + 0.3*0.5) / 1.5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CoverageScore(tt.items), 1e-9)
		})
	}
}

func TestCoverageScore_UsesTopTenOnly(t *testing.T) {
	var items []ScoredItem
	for i := range 10 {
		items = append(items, scored(string(rune('a'+i)), "Drama", 0.9, 1))
	}
	items = append(items, scored("z", "Drama", 0.1, 0))

	assert.InDelta(t, 1.0, CoverageScore(items), 1e-9)
}

// fromCosine is the semantic score of a raw cosine similarity.
func fromCosine(c float64) float64 {
	return (c + 1) / 2
}

func TestAnalysisThresholds(t *testing.T) {
	assert.InDelta(t, 0.7, DefaultWeakCategoryThreshold, 1e-12)
	assert.InDelta(t, 0.75, DefaultDistributionThreshold, 1e-12)
	assert.InDelta(t, 0.85, highAffinityThreshold, 1e-12)
	assert.InDelta(t, 0.75, mediumAffinityThreshold, 1e-12)
}

func TestWeakCategories(t *testing.T) {
	items := []ScoredItem{
		scored("1", "Drama", fromCosine(0.8), 0),
		scored("2", "Horror", fromCosine(0.1), 0),
		scored("3", "Horror", fromCosine(0.3), 0),
		scored("4", "Comedy", fromCosine(0.35), 0),
		scored("5", "Romance", fromCosine(0.39), 0),
		scored("6", "", fromCosine(0), 0),
	}

	assert.Equal(t, []string{"Horror", "Comedy", "Romance"}, WeakCategories(items, DefaultWeakCategoryThreshold))
	assert.Empty(t, WeakCategories(items, 0.05))
}

func TestWeakCategories_UnrelatedCatalogIsWeak(t *testing.T) {
	// orthogonal embeddings, cosine 0
	items := []ScoredItem{
		scored("1", "Western", fromCosine(0.05), 0),
		scored("2", "Musical", fromCosine(-0.05), 0),
		scored("3", "Drama", fromCosine(0.6), 0),
	}

	assert.Equal(t, []string{"Musical", "Western"}, WeakCategories(items, DefaultWeakCategoryThreshold))
}

func TestCategoryDistribution(t *testing.T) {
	items := []ScoredItem{
		scored("1", "Drama", fromCosine(0.8), 0),
		scored("2", "Drama", fromCosine(0.6), 0),
		scored("3", "Drama", fromCosine(0.2), 0),
		scored("4", "Thriller", fromCosine(0.9), 0),
		scored("5", "Comedy", fromCosine(0.4), 0),
	}

	assert.Equal(t, []CategoryScore{
		{Category: "Thriller", Score: 0.95},
		{Category: "Drama", Score: 0.85},
	}, roundScores(CategoryDistribution(items, DefaultDistributionThreshold)))
	assert.Empty(t, CategoryDistribution(items, 0.99))
}

func TestComputeCoverageStats(t *testing.T) {
	items := []ScoredItem{
		scored("1", "", fromCosine(0.9), 0),
		scored("2", "", fromCosine(0.75), 0),
		scored("3", "", fromCosine(0.6), 0),
		scored("4", "", fromCosine(0.2), 0),
	}

	stats := ComputeCoverageStats(items)

	assert.InDelta(t, 0.80625, stats.Mean, 1e-9)
	assert.InDelta(t, 0.8375, stats.Median, 1e-9)
	assert.InDelta(t, 0.95, stats.Max, 1e-9)
	assert.InDelta(t, 0.6, stats.Min, 1e-9)
	assert.Equal(t, 2, stats.HighAffinity)
	assert.Equal(t, 1, stats.MediumAffinity)
	assert.Equal(t, 1, stats.LowAffinity)
	assert.Equal(t, 4, stats.Total)

	assert.Equal(t, CoverageStats{}, ComputeCoverageStats(nil))
}

func roundScores(in []CategoryScore) []CategoryScore {
	out := make([]CategoryScore, len(in))
	for i, c := range in {
		out[i] = CategoryScore{Category: c.Category, Score: float64(int(c.Score*1e6+0.5)) / 1e6}
	}
	return out
}
