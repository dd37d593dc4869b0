package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	augmentationCacheFields = []string{
		"key",
		"payload",
		"created_at",
		"expires_at",
	}
)

// AugmentationCacheRepository is a PostgreSQL implementation of domain.AugmentationCacheStore.
type AugmentationCacheRepository struct {
	db    *sql.DB
	pqsql squirrel.StatementBuilderType
}

// NewAugmentationCacheRepository creates a new instance of AugmentationCacheRepository.
func NewAugmentationCacheRepository(db *sql.DB) AugmentationCacheRepository {
	return AugmentationCacheRepository{
		db:    db,
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// Get retrieves the entry stored under key. Expired entries are returned as-is;
// the cache manager decides what expiry means.
func (r AugmentationCacheRepository) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache_key", key),
	))
	defer span.End()

	var (
		entry     domain.CacheEntry
		expiresAt sql.NullTime
	)
	err := r.pqsql.
		Select(augmentationCacheFields...).
		From("augmentation_cache").
		Where(squirrel.Eq{"key": key}).
		QueryRowContext(spanCtx).
		Scan(&entry.Key, &entry.Payload, &entry.CreatedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheEntry{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CacheEntry{}, false, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if entry.Payload == "" {
		err := domain.NewCacheCorruptionErr(key, errors.New("empty payload"))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CacheEntry{}, false, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		entry.ExpiresAt = &t
	}
	return entry, true, nil
}

// Put inserts the entry, replacing any previous entry under the same key.
func (r AugmentationCacheRepository) Put(ctx context.Context, entry domain.CacheEntry) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache_key", entry.Key),
	))
	defer span.End()

	_, err := r.pqsql.
		Insert("augmentation_cache").
		Columns(augmentationCacheFields...).
		Values(
			entry.Key,
			entry.Payload,
			entry.CreatedAt,
			entry.ExpiresAt,
		).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at`).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (r AugmentationCacheRepository) Count(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := r.pqsql.
		Select("COUNT(*)").
		From("augmentation_cache").
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return count, nil
}

// EvictOldest deletes the oldest entries by creation time until at most keep remain.
func (r AugmentationCacheRepository) EvictOldest(ctx context.Context, keep int) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("keep", keep),
	))
	defer span.End()

	if keep < 0 {
		keep = 0
	}
	res, err := r.pqsql.
		Delete("augmentation_cache").
		Where("key IN (SELECT key FROM augmentation_cache ORDER BY created_at DESC, key DESC OFFSET ?)", keep).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to evict cache entries: %w", err)
	}
	evicted, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("failed to count evicted cache entries: %w", err)
	}
	return int(evicted), nil
}
