package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/rs/zerolog"
)

// analyzedProfile is a profile scored against the whole catalog.
type analyzedProfile struct {
	Profile    domain.UserProfile
	Enrichment *domain.Augmentation
	// Scored holds every eligible item, unsorted.
	Scored []domain.ScoredItem
}

// profileAnalyzer is the pipeline shared by the recommendation use cases:
// validation, optional enrichment, encoding, similarity and preference scoring.
type profileAnalyzer struct {
	index          *domain.CatalogIndex
	encoder        QueryEncoder
	gateway        GenerationGateway
	cache          CacheManager
	logger         *zerolog.Logger
	weights        domain.Weights
	minQueryLength int
	enrichMinWords int
}

func (pa profileAnalyzer) analyze(ctx context.Context, sessionID string, profile domain.UserProfile) (analyzedProfile, error) {
	if err := profile.Validate(pa.minQueryLength); err != nil {
		return analyzedProfile{}, err
	}
	if _, err := lookupSession(pa.cache, sessionID); err != nil {
		return analyzedProfile{}, err
	}

	res := analyzedProfile{Profile: profile}
	if pa.needsEnrichment(profile.Query) {
		call, err := enrichmentCall(profile)
		if err != nil {
			return analyzedProfile{}, err
		}
		aug := pa.gateway.Augment(ctx, sessionID, call)
		res.Enrichment = &aug
		if !aug.IsDegraded() {
			res.Profile = profile.WithEnrichedQuery(aug.Text)
		}
	}

	start := time.Now()
	queryVec, err := pa.encoder.Encode(ctx, res.Profile.AnalysisText())
	if err != nil {
		return analyzedProfile{}, err
	}

	semantic, err := domain.ScoreSemantic(ctx, queryVec, pa.index.AllItems())
	if err != nil {
		return analyzedProfile{}, err
	}

	items := make([]domain.CatalogItem, 0, pa.index.Len())
	for _, item := range pa.index.Items() {
		if !profile.IsExcluded(item.ID) {
			items = append(items, item)
		}
	}
	res.Scored = domain.ScoreItems(items, semantic, res.Profile, pa.weights)
	RecommendationLatency.Record(ctx, time.Since(start).Seconds())

	pa.logger.Debug().
		Str("session_id", sessionID).
		Int("candidates", len(res.Scored)).
		Bool("enriched", res.Enrichment != nil && !res.Enrichment.IsDegraded()).
		Msg("profile analyzed")
	return res, nil
}

// needsEnrichment reports whether the query is short enough to be enriched. Zero disables enrichment.
func (pa profileAnalyzer) needsEnrichment(query string) bool {
	return pa.enrichMinWords > 0 && len(strings.Fields(query)) < pa.enrichMinWords
}
