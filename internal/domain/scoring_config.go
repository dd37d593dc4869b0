package domain

import (
	"fmt"
	"math"
	"time"
)

const weightSumTolerance = 1e-9

// Default scoring configuration values.
const (
	DefaultSemanticWeight    = 0.5
	DefaultGenreWeight       = 0.3
	DefaultMoodWeight        = 0.2
	DefaultTopK              = 3
	DefaultSessionCallBudget = 3
	DefaultCacheMaxEntries   = 100
)

// Weights are the coefficients of the final score combination.
type Weights struct {
	Semantic float64
	Genre    float64
	Mood     float64
}

// DefaultWeights returns 0.5 semantic, 0.3 genre and 0.2 mood.
func DefaultWeights() Weights {
	return Weights{Semantic: DefaultSemanticWeight, Genre: DefaultGenreWeight, Mood: DefaultMoodWeight}
}

// Validate checks that every weight is non-negative and that they sum to 1.
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Genre < 0 || w.Mood < 0 {
		return NewValidationErr(fmt.Sprintf("scoring weights must be non-negative, got %+v", w))
	}
	if sum := w.Semantic + w.Genre + w.Mood; math.Abs(sum-1) > weightSumTolerance {
		return NewValidationErr(fmt.Sprintf("scoring weights must sum to 1, got %g", sum))
	}
	return nil
}

// Combine returns the weighted final score clamped to [0, 1].
func (w Weights) Combine(semantic, genre, mood float64) float64 {
	return Clamp01(w.Semantic*semantic + w.Genre*genre + w.Mood*mood)
}

// ScoringConfig is the startup configuration of ranking and augmentation.
// A zero CacheTTL means cache entries never expire, a zero CacheMaxEntries that the cache is unbounded.
type ScoringConfig struct {
	Weights           Weights
	TopK              int
	SessionCallBudget int
	CacheTTL          time.Duration
	CacheMaxEntries   int
}

// DefaultScoringConfig returns the configuration used when nothing is overridden.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights:           DefaultWeights(),
		TopK:              DefaultTopK,
		SessionCallBudget: DefaultSessionCallBudget,
		CacheMaxEntries:   DefaultCacheMaxEntries,
	}
}

// Validate checks the whole configuration.
func (c ScoringConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.TopK < 1 {
		return NewValidationErr(fmt.Sprintf("top K must be at least 1, got %d", c.TopK))
	}
	if c.SessionCallBudget < 0 {
		return NewValidationErr(fmt.Sprintf("session call budget must not be negative, got %d", c.SessionCallBudget))
	}
	if c.CacheTTL < 0 {
		return NewValidationErr(fmt.Sprintf("cache TTL must not be negative, got %s", c.CacheTTL))
	}
	if c.CacheMaxEntries < 0 {
		return NewValidationErr(fmt.Sprintf("cache max entries must not be negative, got %d", c.CacheMaxEntries))
	}
	return nil
}
