package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/common"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	lru "github.com/hashicorp/golang-lru/v2"
)

// QueryEncoder projects free text into the catalog semantic space.
type QueryEncoder interface {
	Encode(ctx context.Context, text string) ([]float64, error)
}

// QueryEncoderImpl encodes queries with the catalog embedding model and memoizes the vectors.
type QueryEncoderImpl struct {
	encoder domain.SemanticEncoder
	model   string
	memo    *lru.Cache[string, []float64]
}

// NewQueryEncoderImpl creates a new QueryEncoderImpl remembering up to memoSize queries.
func NewQueryEncoderImpl(encoder domain.SemanticEncoder, model string, memoSize int) (*QueryEncoderImpl, error) {
	memo, err := lru.New[string, []float64](memoSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query memo: %w", err)
	}
	return &QueryEncoderImpl{
		encoder: encoder,
		model:   model,
		memo:    memo,
	}, nil
}

// Encode returns the query vector. The same text always yields the same vector.
func (qe *QueryEncoderImpl) Encode(ctx context.Context, text string) ([]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		err := domain.NewValidationErr("query text is empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	key := common.ContentHash(qe.model, text)
	if vec, ok := qe.memo.Get(key); ok {
		return append([]float64(nil), vec...), nil
	}

	res, err := qe.encoder.VectorizeQuery(spanCtx, qe.model, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	RecordLLMTokensEmbedding(spanCtx, res.TotalTokens)

	qe.memo.Add(key, append([]float64(nil), res.Vector...))
	return res.Vector, nil
}

// InitQueryEncoder initializes the QueryEncoder.
type InitQueryEncoder struct {
	Encoder  domain.SemanticEncoder `resolve:""`
	Model    string                 `config:"LLM_EMBEDDING_MODEL"`
	MemoSize int                    `config:"QUERY_MEMO_SIZE" default:"256"`
}

// Initialize registers the QueryEncoder in the dependency container.
func (i InitQueryEncoder) Initialize(ctx context.Context) (context.Context, error) {
	qe, err := NewQueryEncoderImpl(i.Encoder, i.Model, i.MemoSize)
	if err != nil {
		return ctx, err
	}
	depend.Register[QueryEncoder](qe)
	return ctx, nil
}
