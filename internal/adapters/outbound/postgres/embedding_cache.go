package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/common"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingCacheRepository is a PostgreSQL implementation of domain.EmbeddingCacheStore
// backed by a pgvector column.
type EmbeddingCacheRepository struct {
	db    *sql.DB
	pqsql squirrel.StatementBuilderType
}

// NewEmbeddingCacheRepository creates a new instance of EmbeddingCacheRepository.
func NewEmbeddingCacheRepository(db *sql.DB) EmbeddingCacheRepository {
	return EmbeddingCacheRepository{
		db:    db,
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// GetEmbedding returns the vector stored under key.
func (r EmbeddingCacheRepository) GetEmbedding(ctx context.Context, key string) ([]float64, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var vec pgvector.Vector
	err := r.pqsql.
		Select("embedding").
		From("embedding_cache").
		Where(squirrel.Eq{"key": key}).
		QueryRowContext(spanCtx).
		Scan(&vec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, fmt.Errorf("failed to get embedding: %w", err)
	}
	return common.ToFloat64(vec.Slice()), true, nil
}

// PutEmbedding stores the vector under key, replacing any previous vector.
func (r EmbeddingCacheRepository) PutEmbedding(ctx context.Context, key string, vector []float64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.pqsql.
		Insert("embedding_cache").
		Columns("key", "embedding").
		Values(key, pgvector.NewVector(common.ToFloat32(vector))).
		Suffix("ON CONFLICT (key) DO UPDATE SET embedding = EXCLUDED.embedding").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store embedding: %w", err)
	}
	return nil
}
