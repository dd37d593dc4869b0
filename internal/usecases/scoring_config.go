package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitScoringConfig reads, validates and registers the domain.ScoringConfig.
// Weights are read as decimal strings.
type InitScoringConfig struct {
	SemanticWeight    string        `config:"SCORING_SEMANTIC_WEIGHT" default:"0.5"`
	GenreWeight       string        `config:"SCORING_GENRE_WEIGHT" default:"0.3"`
	MoodWeight        string        `config:"SCORING_MOOD_WEIGHT" default:"0.2"`
	TopK              int           `config:"RECOMMEND_TOP_K" default:"3"`
	SessionCallBudget int           `config:"SESSION_CALL_BUDGET" default:"3"`
	CacheTTL          time.Duration `config:"CACHE_TTL" default:"0s"`
	CacheMaxEntries   int           `config:"CACHE_MAX_ENTRIES" default:"100"`
}

// Initialize parses the configuration and fails startup when it is invalid.
func (i InitScoringConfig) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := i.build()
	if err != nil {
		return ctx, err
	}
	depend.Register(cfg)
	return ctx, nil
}

func (i InitScoringConfig) build() (domain.ScoringConfig, error) {
	var (
		w   domain.Weights
		err error
	)
	if w.Semantic, err = parseWeight("SCORING_SEMANTIC_WEIGHT", i.SemanticWeight); err != nil {
		return domain.ScoringConfig{}, err
	}
	if w.Genre, err = parseWeight("SCORING_GENRE_WEIGHT", i.GenreWeight); err != nil {
		return domain.ScoringConfig{}, err
	}
	if w.Mood, err = parseWeight("SCORING_MOOD_WEIGHT", i.MoodWeight); err != nil {
		return domain.ScoringConfig{}, err
	}

	cfg := domain.ScoringConfig{
		Weights:           w,
		TopK:              i.TopK,
		SessionCallBudget: i.SessionCallBudget,
		CacheTTL:          i.CacheTTL,
		CacheMaxEntries:   i.CacheMaxEntries,
	}
	if err := cfg.Validate(); err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return cfg, nil
}

func parseWeight(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, domain.NewValidationErr(fmt.Sprintf("%s must be a decimal number, got %q", key, value))
	}
	return f, nil
}
