package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const embeddingKeyPrefix = "embedding:"

// EmbeddingCacheStore implements domain.EmbeddingCacheStore on BadgerDB.
type EmbeddingCacheStore struct {
	db *badger.DB
}

// NewEmbeddingCacheStore creates a new EmbeddingCacheStore.
func NewEmbeddingCacheStore(db *badger.DB) *EmbeddingCacheStore {
	return &EmbeddingCacheStore{db: db}
}

// GetEmbedding returns the vector stored under key. An undecodable value is
// reported as not found so the caller re-embeds the item.
func (s *EmbeddingCacheStore) GetEmbedding(ctx context.Context, key string) ([]float64, bool, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	var vector []float64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(embeddingKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get embedding: %w", err)
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &vector); err != nil {
				vector = nil
			}
			return nil
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	return vector, len(vector) > 0, nil
}

// PutEmbedding stores the vector under key.
func (s *EmbeddingCacheStore) PutEmbedding(ctx context.Context, key string, vector []float64) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	data, err := json.Marshal(vector)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("marshal embedding: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(embeddingKeyPrefix+key), data)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("set embedding: %w", err)
	}
	return nil
}
