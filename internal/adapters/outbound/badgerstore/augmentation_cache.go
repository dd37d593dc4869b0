package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const augmentationKeyPrefix = "augmentation:"

// AugmentationCacheStore implements domain.AugmentationCacheStore on BadgerDB.
// Entries with an expiry carry a matching Badger TTL so expired payloads are
// eventually reclaimed by compaction.
type AugmentationCacheStore struct {
	db *badger.DB
}

// NewAugmentationCacheStore creates a new AugmentationCacheStore.
func NewAugmentationCacheStore(db *badger.DB) *AugmentationCacheStore {
	return &AugmentationCacheStore{db: db}
}

// Get retrieves the entry stored under key.
func (s *AugmentationCacheStore) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache_key", key),
	))
	defer span.End()

	var (
		entry domain.CacheEntry
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(augmentationKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get cache entry: %w", err)
		}

		found = true
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entry); err != nil {
				return domain.NewCacheCorruptionErr(key, err)
			}
			if entry.Key != key || entry.Payload == "" {
				return domain.NewCacheCorruptionErr(key, errors.New("stored entry does not match its key"))
			}
			return nil
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CacheEntry{}, false, err
	}
	return entry, found, nil
}

// Put inserts or replaces the entry in a single transaction.
func (s *AugmentationCacheStore) Put(ctx context.Context, entry domain.CacheEntry) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("cache_key", entry.Key),
	))
	defer span.End()

	data, err := json.Marshal(entry)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(augmentationKeyPrefix+entry.Key), data)
		if ttl := entryTTL(entry); ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

// entryTTL is the lifetime of the entry measured from its own creation time,
// so it agrees with CacheEntry.IsExpired whatever clock produced the entry.
func entryTTL(entry domain.CacheEntry) time.Duration {
	if entry.ExpiresAt == nil {
		return 0
	}
	return entry.ExpiresAt.Sub(entry.CreatedAt)
}

// Count returns the number of entries Badger still holds.
func (s *AugmentationCacheStore) Count(ctx context.Context) (int, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(augmentationKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}

type storedEntry struct {
	key       []byte
	createdAt time.Time
}

// EvictOldest deletes the oldest entries by creation time until at most keep remain.
// Undecodable entries count as the oldest.
func (s *AugmentationCacheStore) EvictOldest(ctx context.Context, keep int) (int, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("keep", keep),
	))
	defer span.End()

	if keep < 0 {
		keep = 0
	}
	evicted := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		var entries []storedEntry
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(augmentationKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			se := storedEntry{key: item.KeyCopy(nil)}
			_ = item.Value(func(val []byte) error {
				var entry domain.CacheEntry
				if json.Unmarshal(val, &entry) == nil {
					se.createdAt = entry.CreatedAt
				}
				return nil
			})
			entries = append(entries, se)
		}
		it.Close()

		if len(entries) <= keep {
			return nil
		}
		// newest first, the tail is evicted
		slices.SortFunc(entries, func(a, b storedEntry) int {
			if c := b.createdAt.Compare(a.createdAt); c != 0 {
				return c
			}
			return slices.Compare(b.key, a.key)
		})
		for _, se := range entries[keep:] {
			if err := txn.Delete(se.key); err != nil {
				return err
			}
			evicted++
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("evict cache entries: %w", err)
	}
	return evicted, nil
}
