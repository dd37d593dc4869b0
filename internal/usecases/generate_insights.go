package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// Insights is the taste analysis of one profile.
type Insights struct {
	SessionID        string
	TopItems         []domain.ScoredItem
	CoverageScore    float64
	Stats            domain.CoverageStats
	WeakCategories   []string
	Distribution     []domain.CategoryScore
	CinephileProfile domain.Augmentation
	DiscoveryPlan    domain.Augmentation
	RemainingBudget  int
}

// GenerateInsights analyzes how the catalog covers a profile and writes
// a cinephile profile and a discovery plan for it.
type GenerateInsights interface {
	Execute(ctx context.Context, sessionID string, profile domain.UserProfile) (Insights, error)
}

// GenerateInsightsImpl is the implementation of the GenerateInsights use case.
type GenerateInsightsImpl struct {
	analyzer profileAnalyzer
	topK     int
}

// NewGenerateInsightsImpl creates a new GenerateInsightsImpl.
func NewGenerateInsightsImpl(
	idx *domain.CatalogIndex,
	qe QueryEncoder,
	gw GenerationGateway,
	cm CacheManager,
	logger *zerolog.Logger,
	cfg domain.ScoringConfig,
	minQueryLength int,
	enrichMinWords int,
) GenerateInsightsImpl {
	return GenerateInsightsImpl{
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

// Execute computes the coverage analysis, then asks for the discovery plan
// and the cinephile profile, in that order.
func (gi GenerateInsightsImpl) Execute(ctx context.Context, sessionID string, profile domain.UserProfile) (Insights, error) {
	spanCtx, span := telemetry.StartForSession(ctx, sessionID)
	defer span.End()

	analyzed, err := gi.analyzer.analyze(spanCtx, sessionID, profile)
	if telemetry.RecordErrorAndStatus(span, err) {
		return Insights{}, err
	}

	top := domain.Rank(analyzed.Scored, gi.topK)
	insights := Insights{
		SessionID:      sessionID,
		TopItems:       top,
		CoverageScore:  domain.CoverageScore(analyzed.Scored),
		Stats:          domain.ComputeCoverageStats(analyzed.Scored),
		WeakCategories: domain.WeakCategories(analyzed.Scored, domain.DefaultWeakCategoryThreshold),
		Distribution:   domain.CategoryDistribution(analyzed.Scored, domain.DefaultDistributionThreshold),
	}

	planCall, err := discoveryPlanCall(analyzed.Profile, top, insights.WeakCategories)
	if telemetry.RecordErrorAndStatus(span, err) {
		return Insights{}, err
	}
	insights.DiscoveryPlan = gi.analyzer.gateway.Augment(spanCtx, sessionID, planCall)

	profileCall, err := cinephileProfileCall(analyzed.Profile, top, insights.CoverageScore)
	if telemetry.RecordErrorAndStatus(span, err) {
		return Insights{}, err
	}
	insights.CinephileProfile = gi.analyzer.gateway.Augment(spanCtx, sessionID, profileCall)

	insights.RemainingBudget = gi.analyzer.cache.RemainingBudget(sessionID)
	return insights, nil
}

// InitGenerateInsights initializes the GenerateInsights use case.
type InitGenerateInsights struct {
	Index          *domain.CatalogIndex `resolve:""`
	QueryEncoder   QueryEncoder         `resolve:""`
	Gateway        GenerationGateway    `resolve:""`
	CacheManager   CacheManager         `resolve:""`
	Logger         *zerolog.Logger      `resolve:""`
	Config         domain.ScoringConfig `resolve:""`
	MinQueryLength int                  `config:"PROFILE_MIN_QUERY_LENGTH" default:"20"`
	EnrichMinWords int                  `config:"ENRICH_MIN_WORDS" default:"15"`
}

// Initialize registers the GenerateInsights use case in the dependency container.
func (i InitGenerateInsights) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateInsights](NewGenerateInsightsImpl(
		i.Index, i.QueryEncoder, i.Gateway, i.CacheManager, i.Logger, i.Config, i.MinQueryLength, i.EnrichMinWords,
	))
	return ctx, nil
}
