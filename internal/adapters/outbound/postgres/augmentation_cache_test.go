package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/stretchr/testify/assert"
)

const (
	selectCacheEntryQuery = "SELECT key, payload, created_at, expires_at FROM augmentation_cache WHERE key = $1"
	upsertCacheEntryQuery = "INSERT INTO augmentation_cache (key,payload,created_at,expires_at) VALUES ($1,$2,$3,$4) " +
		"ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at"
	evictCacheEntriesQuery = "DELETE FROM augmentation_cache WHERE key IN " +
		"(SELECT key FROM augmentation_cache ORDER BY created_at DESC, key DESC OFFSET $1)"
)

func TestAugmentationCacheRepository_Get(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(24 * time.Hour)

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedEntry   domain.CacheEntry
		expectedFound   bool
		expectErr       bool
		expectCorrupt   bool
	}{
		"found-with-expiry": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCacheEntryQuery).
					WithArgs("k1").
					WillReturnRows(sqlmock.NewRows(augmentationCacheFields).
						AddRow("k1", "Inception is a heist inside dreams.", createdAt, expiresAt))
			},
			expectedEntry: domain.CacheEntry{
				Key:       "k1",
				Payload:   "Inception is a heist inside dreams.",
				CreatedAt: createdAt,
				ExpiresAt: &expiresAt,
			},
			expectedFound: true,
		},
		"found-without-expiry": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCacheEntryQuery).
					WithArgs("k1").
					WillReturnRows(sqlmock.NewRows(augmentationCacheFields).
						AddRow("k1", "payload", createdAt, nil))
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "payload", CreatedAt: createdAt},
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCacheEntryQuery).
					WithArgs("k1").
					WillReturnError(sql.ErrNoRows)
			},
		},
		"empty-payload-is-corrupted": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCacheEntryQuery).
					WithArgs("k1").
					WillReturnRows(sqlmock.NewRows(augmentationCacheFields).
						AddRow("k1", "", createdAt, nil))
			},
			expectErr:     true,
			expectCorrupt: true,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectCacheEntryQuery).
					WithArgs("k1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewAugmentationCacheRepository(db)
			entry, found, err := repo.Get(context.Background(), "k1")
			if tt.expectErr {
				assert.Error(t, err)
				var corrupt *domain.CacheCorruptionErr
				assert.Equal(t, tt.expectCorrupt, errors.As(err, &corrupt))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedEntry, entry)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAugmentationCacheRepository_Put(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(time.Hour)

	tests := map[string]struct {
		entry           domain.CacheEntry
		setExpectations func(mock sqlmock.Sqlmock, entry domain.CacheEntry)
		expectErr       bool
	}{
		"success-with-expiry": {
			entry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: createdAt, ExpiresAt: &expiresAt},
			setExpectations: func(mock sqlmock.Sqlmock, entry domain.CacheEntry) {
				mock.ExpectExec(upsertCacheEntryQuery).
					WithArgs(entry.Key, entry.Payload, entry.CreatedAt, expiresAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"success-without-expiry": {
			entry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: createdAt},
			setExpectations: func(mock sqlmock.Sqlmock, entry domain.CacheEntry) {
				mock.ExpectExec(upsertCacheEntryQuery).
					WithArgs(entry.Key, entry.Payload, entry.CreatedAt, nil).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			entry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: createdAt},
			setExpectations: func(mock sqlmock.Sqlmock, entry domain.CacheEntry) {
				mock.ExpectExec(upsertCacheEntryQuery).
					WithArgs(entry.Key, entry.Payload, entry.CreatedAt, nil).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock, tt.entry)

			repo := NewAugmentationCacheRepository(db)
			err = repo.Put(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAugmentationCacheRepository_Count(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedCount   int
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT(*) FROM augmentation_cache").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
			},
			expectedCount: 4,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT(*) FROM augmentation_cache").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewAugmentationCacheRepository(db)
			count, err := repo.Count(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAugmentationCacheRepository_EvictOldest(t *testing.T) {
	tests := map[string]struct {
		keep            int
		setExpectations func(mock sqlmock.Sqlmock)
		expectedEvicted int
		expectErr       bool
	}{
		"evicts-beyond-keep": {
			keep: 99,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(evictCacheEntriesQuery).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
			expectedEvicted: 2,
		},
		"nothing-to-evict": {
			keep: 99,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(evictCacheEntriesQuery).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		"negative-keep-evicts-everything": {
			keep: -1,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(evictCacheEntriesQuery).
					WithArgs(0).
					WillReturnResult(sqlmock.NewResult(0, 5))
			},
			expectedEvicted: 5,
		},
		"database-error": {
			keep: 99,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(evictCacheEntriesQuery).
					WithArgs(99).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewAugmentationCacheRepository(db)
			evicted, err := repo.EvictOldest(context.Background(), tt.keep)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedEvicted, evicted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
