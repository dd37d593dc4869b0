package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// RecommendOptions tune one recommendation request.
type RecommendOptions struct {
	// TopK overrides the configured number of results when positive.
	TopK int
	// Justify asks for one generated explanation per recommended item.
	Justify bool
}

// RecommendedItem is a ranked item with its optional explanation.
type RecommendedItem struct {
	domain.ScoredItem
	Justification *domain.Augmentation
}

// RecommendationResult is the outcome of RecommendFilms.
type RecommendationResult struct {
	SessionID       string
	Items           []RecommendedItem
	AnalyzedQuery   string
	Enrichment      *domain.Augmentation
	RemainingBudget int
}

// RecommendFilms ranks the catalog for a user profile.
type RecommendFilms interface {
	Execute(ctx context.Context, sessionID string, profile domain.UserProfile, opts RecommendOptions) (RecommendationResult, error)
}

// RecommendFilmsImpl is the implementation of the RecommendFilms use case.
type RecommendFilmsImpl struct {
	analyzer profileAnalyzer
	topK     int
}

// NewRecommendFilmsImpl creates a new RecommendFilmsImpl.
func NewRecommendFilmsImpl(
	idx *domain.CatalogIndex,
	qe QueryEncoder,
	gw GenerationGateway,
	cm CacheManager,
	logger *zerolog.Logger,
	cfg domain.ScoringConfig,
	minQueryLength int,
	enrichMinWords int,
) RecommendFilmsImpl {
	return RecommendFilmsImpl{
		analyzer: profileAnalyzer{
			index:          idx,
			encoder:        qe,
			gateway:        gw,
			cache:          cm,
			logger:         logger,
			weights:        cfg.Weights,
			minQueryLength: minQueryLength,
			enrichMinWords: enrichMinWords,
		},
		topK: cfg.TopK,
	}
}

// Execute validates the profile, ranks the catalog and, when asked, justifies each result.
// Justifications are requested in rank order, so the budget favors the best items.
func (rf RecommendFilmsImpl) Execute(
	ctx context.Context,
	sessionID string,
	profile domain.UserProfile,
	opts RecommendOptions,
) (RecommendationResult, error) {
	spanCtx, span := telemetry.StartForSession(ctx, sessionID, telemetry.TopKKey.Int(opts.TopK))
	defer span.End()

	topK := rf.topK
	if opts.TopK < 0 {
		err := domain.NewValidationErr(fmt.Sprintf("top_k must be positive, got %d", opts.TopK))
		telemetry.RecordErrorAndStatus(span, err)
		return RecommendationResult{}, err
	}
	if opts.TopK > 0 {
		topK = opts.TopK
	}

	analyzed, err := rf.analyzer.analyze(spanCtx, sessionID, profile)
	if telemetry.RecordErrorAndStatus(span, err) {
		return RecommendationResult{}, err
	}

	ranked := domain.Rank(analyzed.Scored, topK)
	items := make([]RecommendedItem, len(ranked))
	for i, scored := range ranked {
		items[i] = RecommendedItem{ScoredItem: scored}
		if !opts.Justify {
			continue
		}
		call, err := justificationCall(analyzed.Profile, scored)
		if telemetry.RecordErrorAndStatus(span, err) {
			return RecommendationResult{}, err
		}
		aug := rf.analyzer.gateway.Augment(spanCtx, sessionID, call)
		items[i].Justification = &aug
	}

	return RecommendationResult{
		SessionID:       sessionID,
		Items:           items,
		AnalyzedQuery:   analyzed.Profile.AnalysisText(),
		Enrichment:      analyzed.Enrichment,
		RemainingBudget: rf.analyzer.cache.RemainingBudget(sessionID),
	}, nil
}

// InitRecommendFilms initializes the RecommendFilms use case.
type InitRecommendFilms struct {
	Index          *domain.CatalogIndex `resolve:""`
	QueryEncoder   QueryEncoder         `resolve:""`
	Gateway        GenerationGateway    `resolve:""`
	CacheManager   CacheManager         `resolve:""`
	Logger         *zerolog.Logger      `resolve:""`
	Config         domain.ScoringConfig `resolve:""`
	MinQueryLength int                  `config:"PROFILE_MIN_QUERY_LENGTH" default:"20"`
	EnrichMinWords int                  `config:"ENRICH_MIN_WORDS" default:"15"`
}

// Initialize registers the RecommendFilms use case in the dependency container.
func (i InitRecommendFilms) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendFilms](NewRecommendFilmsImpl(
		i.Index, i.QueryEncoder, i.Gateway, i.CacheManager, i.Logger, i.Config, i.MinQueryLength, i.EnrichMinWords,
	))
	return ctx, nil
}
