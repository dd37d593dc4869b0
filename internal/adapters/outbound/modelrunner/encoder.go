package modelrunner

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
)

// SemanticEncoder adapts DRMAPIClient to domain.SemanticEncoder.
type SemanticEncoder struct {
	client           DRMAPIClient
	embeddingFactory EmbeddingFactory
}

// NewSemanticEncoderAdapter creates a new adapter.
func NewSemanticEncoderAdapter(client DRMAPIClient) SemanticEncoder {
	return SemanticEncoder{client: client, embeddingFactory: embeddingFactory{}}
}

// VectorizeCatalogItem implements domain.SemanticEncoder.
func (a SemanticEncoder) VectorizeCatalogItem(ctx context.Context, model string, item domain.CatalogItem) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateIndexingPrompt(item)
	vec, err := a.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (a SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateSearchPrompt(query)
	vec, err := a.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (a SemanticEncoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	req := EmbeddingsRequest{Model: model, Input: input}
	resp, err := a.client.Embeddings(ctx, req)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}
