package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/common"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CatalogIndexer vectorizes raw catalog items and builds the read-only index.
type CatalogIndexer struct {
	encoder     domain.SemanticEncoder
	embeddings  domain.EmbeddingCacheStore
	logger      *zerolog.Logger
	model       string
	concurrency int
}

// NewCatalogIndexer creates a new CatalogIndexer.
func NewCatalogIndexer(
	encoder domain.SemanticEncoder,
	embeddings domain.EmbeddingCacheStore,
	logger *zerolog.Logger,
	model string,
	concurrency int,
) CatalogIndexer {
	if concurrency < 1 {
		concurrency = 1
	}
	return CatalogIndexer{
		encoder:     encoder,
		embeddings:  embeddings,
		logger:      logger,
		model:       model,
		concurrency: concurrency,
	}
}

// Build embeds every item and returns the index. Any failure aborts the whole build:
// a partial index is never returned.
func (ci CatalogIndexer) Build(ctx context.Context, items []domain.CatalogItem) (*domain.CatalogIndex, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vectorized := make([]domain.CatalogItem, len(items))
	g, gctx := errgroup.WithContext(spanCtx)
	g.SetLimit(ci.concurrency)

	for i, item := range items {
		g.Go(func() error {
			vec, err := ci.vectorize(gctx, item)
			if err != nil {
				return err
			}
			item.Vector = vec
			vectorized[i] = item
			return nil
		})
	}
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	idx, err := domain.NewCatalogIndex(vectorized)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return idx, nil
}

func (ci CatalogIndexer) vectorize(ctx context.Context, item domain.CatalogItem) ([]float64, error) {
	if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Description) == "" {
		return nil, domain.NewIndexBuildErr(item.ID, "item has no title or description to embed")
	}

	key := common.ContentHash(ci.model, item.IndexingText())
	vec, found, err := ci.embeddings.GetEmbedding(ctx, key)
	if err != nil {
		ci.logger.Warn().Err(err).Str("item_id", item.ID).Msg("embedding cache read failed")
	}
	if found && len(vec) > 0 {
		return vec, nil
	}

	res, err := ci.encoder.VectorizeCatalogItem(ctx, ci.model, item)
	if err != nil {
		return nil, domain.NewIndexBuildErr(item.ID, fmt.Sprintf("embedding failed: %v", err))
	}
	if len(res.Vector) == 0 {
		return nil, domain.NewIndexBuildErr(item.ID, "embedding model returned an empty vector")
	}
	RecordLLMTokensEmbedding(ctx, res.TotalTokens)

	if err := ci.embeddings.PutEmbedding(ctx, key, res.Vector); err != nil {
		ci.logger.Warn().Err(err).Str("item_id", item.ID).Msg("embedding cache write failed")
	}
	return res.Vector, nil
}

// InitCatalogIndex loads the catalog, vectorizes it and registers the *domain.CatalogIndex.
// Startup fails when the index cannot be built.
type InitCatalogIndex struct {
	Source      domain.CatalogSource       `resolve:""`
	Encoder     domain.SemanticEncoder     `resolve:""`
	Embeddings  domain.EmbeddingCacheStore `resolve:""`
	Logger      *zerolog.Logger            `resolve:""`
	Model       string                     `config:"LLM_EMBEDDING_MODEL"`
	Concurrency int                        `config:"CATALOG_INDEX_CONCURRENCY" default:"4"`
}

// Initialize builds the index and registers it in the dependency container.
func (i InitCatalogIndex) Initialize(ctx context.Context) (context.Context, error) {
	items, err := i.Source.LoadItems(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to load catalog: %w", err)
	}

	idx, err := NewCatalogIndexer(i.Encoder, i.Embeddings, i.Logger, i.Model, i.Concurrency).Build(ctx, items)
	if err != nil {
		return ctx, err
	}

	i.Logger.Info().
		Int("items", idx.Len()).
		Int("dimension", idx.Dimension()).
		Str("model", i.Model).
		Msg("catalog indexed")

	depend.Register(idx)
	return ctx, nil
}
