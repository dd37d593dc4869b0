package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCacheManagerImpl_Lookup(t *testing.T) {
	past := fixedNow.Add(-time.Second)
	future := fixedNow.Add(time.Hour)

	tests := map[string]struct {
		setExpectations func(*domain_mocks.MockAugmentationCacheStore)
		expectedEntry   domain.CacheEntry
		expectedFound   bool
	}{
		"hit": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "text", ExpiresAt: &future}, true, nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", ExpiresAt: &future},
			expectedFound: true,
		},
		"hit-without-expiry": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "text"}, true, nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text"},
			expectedFound: true,
		},
		"miss": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
			},
		},
		"expired-entry-is-a-miss": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "old", ExpiresAt: &past}, true, nil)
			},
		},
		"corrupted-entry-is-a-miss": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{}, false, domain.NewCacheCorruptionErr("k1", assert.AnError))
			},
		},
		"store-error-is-a-miss": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, assert.AnError)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain_mocks.NewMockAugmentationCacheStore(t)
			tt.setExpectations(store)

			cm := newTestCacheManager(t, store, 3)
			entry, found := cm.Lookup(context.Background(), "k1")

			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedEntry, entry)
		})
	}
}

func TestCacheManagerImpl_Store(t *testing.T) {
	expiresAt := fixedNow.Add(time.Hour)

	tests := map[string]struct {
		ttl             time.Duration
		maxEntries      int
		setExpectations func(*domain_mocks.MockAugmentationCacheStore)
		expectedEntry   domain.CacheEntry
		expectErr       bool
	}{
		"new-entry-without-ttl": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
				s.EXPECT().Put(mock.Anything, domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow}).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow},
		},
		"new-entry-with-ttl": {
			ttl: time.Hour,
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
				s.EXPECT().Put(mock.Anything, mock.MatchedBy(func(e domain.CacheEntry) bool {
					return e.Key == "k1" && e.Payload == "text" && e.ExpiresAt != nil && e.ExpiresAt.Equal(expiresAt)
				})).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow, ExpiresAt: &expiresAt},
		},
		"same-payload-is-a-no-op": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow.Add(-time.Minute)}, true, nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow.Add(-time.Minute)},
		},
		"different-payload-replaces-entry": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "old"}, true, nil)
				s.EXPECT().Put(mock.Anything, domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow}).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow},
		},
		"new-entry-makes-room": {
			maxEntries: 2,
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
				s.EXPECT().EvictOldest(mock.Anything, 1).Return(1, nil).Once()
				s.EXPECT().Put(mock.Anything, domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow}).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow},
		},
		"eviction-error-still-stores": {
			maxEntries: 2,
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
				s.EXPECT().EvictOldest(mock.Anything, 1).Return(0, assert.AnError).Once()
				s.EXPECT().Put(mock.Anything, domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow}).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow},
		},
		"replacing-an-entry-does-not-evict": {
			maxEntries: 2,
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").
					Return(domain.CacheEntry{Key: "k1", Payload: "old"}, true, nil)
				s.EXPECT().Put(mock.Anything, domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow}).Return(nil)
			},
			expectedEntry: domain.CacheEntry{Key: "k1", Payload: "text", CreatedAt: fixedNow},
		},
		"put-error": {
			setExpectations: func(s *domain_mocks.MockAugmentationCacheStore) {
				s.EXPECT().Get(mock.Anything, "k1").Return(domain.CacheEntry{}, false, nil)
				s.EXPECT().Put(mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain_mocks.NewMockAugmentationCacheStore(t)
			tt.setExpectations(store)

			cfg := domain.DefaultScoringConfig()
			cfg.CacheTTL = tt.ttl
			cfg.CacheMaxEntries = tt.maxEntries
			cm := NewCacheManagerImpl(store, fixedClock(t), nopLogger(), cfg)

			entry, err := cm.Store(context.Background(), "k1", "text")
			if tt.expectErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEntry, entry)
		})
	}
}

func TestCacheManagerImpl_StoreIsIdempotent(t *testing.T) {
	store := newMemCacheStore()
	cm := newTestCacheManager(t, store, 3)

	first, err := cm.Store(context.Background(), "k1", "text")
	require.NoError(t, err)
	second, err := cm.Store(context.Background(), "k1", "text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.putCount())

	entry, found := cm.Lookup(context.Background(), "k1")
	assert.True(t, found)
	assert.Equal(t, "text", entry.Payload)
}

func TestCacheManagerImpl_CapacityEvictsOldestFirst(t *testing.T) {
	tick := fixedNow
	clock := domain_mocks.NewMockCurrentTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}).Maybe()

	cfg := domain.DefaultScoringConfig()
	cfg.CacheMaxEntries = 3
	store := newMemCacheStore()
	cm := NewCacheManagerImpl(store, clock, nopLogger(), cfg)
	assert.Equal(t, 3, cm.Capacity())

	ctx := context.Background()
	for _, key := range []string{"k1", "k2", "k3", "k4", "k5"} {
		_, err := cm.Store(ctx, key, "text "+key)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"k3", "k4", "k5"}, store.keys())

	// replacing a live entry keeps the others
	_, err := cm.Store(ctx, "k3", "new text")
	require.NoError(t, err)
	assert.Equal(t, []string{"k3", "k4", "k5"}, store.keys())

	n, err := cm.EntryCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCacheManagerImpl_Budget(t *testing.T) {
	cm := newTestCacheManager(t, newMemCacheStore(), 3)

	assert.Equal(t, 0, cm.RemainingBudget("s1"))
	assert.False(t, cm.TryConsume("s1"), "unknown sessions have no budget")

	session := cm.StartSession("s1")
	assert.Equal(t, domain.Session{ID: "s1", StartedAt: fixedNow, RemainingBudget: 3}, session)

	assert.True(t, cm.TryConsume("s1"))
	assert.True(t, cm.TryConsume("s1"))
	assert.True(t, cm.TryConsume("s1"))
	assert.False(t, cm.TryConsume("s1"))
	assert.Equal(t, 0, cm.RemainingBudget("s1"))

	cm.StartSession("s2")
	assert.Equal(t, 3, cm.RemainingBudget("s2"), "sessions have independent budgets")

	cm.StartSession("s1")
	got, ok := cm.Session("s1")
	require.True(t, ok)
	assert.Equal(t, 3, got.RemainingBudget, "starting a session again resets it")

	_, ok = cm.Session("unknown")
	assert.False(t, ok)
}

func TestCacheManagerImpl_ZeroBudget(t *testing.T) {
	cm := newTestCacheManager(t, newMemCacheStore(), 0)
	cm.StartSession("s1")

	assert.False(t, cm.TryConsume("s1"))
	assert.Equal(t, 0, cm.RemainingBudget("s1"))
}

func TestCacheManagerImpl_TryConsumeIsAtomic(t *testing.T) {
	cm := newTestCacheManager(t, newMemCacheStore(), 3)
	cm.StartSession("s1")

	var granted atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cm.TryConsume("s1") {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), granted.Load())
	assert.Equal(t, 0, cm.RemainingBudget("s1"))
}

func TestCacheManagerImpl_EntryCount(t *testing.T) {
	store := domain_mocks.NewMockAugmentationCacheStore(t)
	store.EXPECT().Count(mock.Anything).Return(7, nil)

	cm := newTestCacheManager(t, store, 3)
	n, err := cm.EntryCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestInitCacheManager_Initialize(t *testing.T) {
	icm := InitCacheManager{
		Store:        newMemCacheStore(),
		TimeProvider: fixedClock(t),
		Logger:       nopLogger(),
		Config:       domain.DefaultScoringConfig(),
	}

	ctx, err := icm.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CacheManager]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
