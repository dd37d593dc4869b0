package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// CacheManager owns the augmentation cache and the per-session call budgets.
type CacheManager interface {
	// Lookup returns the live entry stored under key. Expired and unreadable entries are misses.
	Lookup(ctx context.Context, key string) (domain.CacheEntry, bool)
	// Store persists payload under key. Storing the same payload twice is a no-op.
	Store(ctx context.Context, key, payload string) (domain.CacheEntry, error)
	// EntryCount returns the number of stored entries.
	EntryCount(ctx context.Context) (int, error)
	// Capacity returns the maximum number of stored entries, 0 when unbounded.
	Capacity() int

	// StartSession creates the session, or resets it, with a full budget.
	StartSession(sessionID string) domain.Session
	// Session returns the current state of the session.
	Session(sessionID string) (domain.Session, bool)
	// RemainingBudget returns the calls left to the session. Unknown sessions have none.
	RemainingBudget(sessionID string) int
	// TryConsume reserves one generation call. It returns false when the budget is spent.
	TryConsume(sessionID string) bool
}

type sessionLedger struct {
	startedAt time.Time
	remaining int
}

// CacheManagerImpl is the CacheManager backed by a durable domain.AugmentationCacheStore.
// Budgets are kept in memory and guarded by a mutex.
type CacheManagerImpl struct {
	store        domain.AugmentationCacheStore
	timeProvider domain.CurrentTimeProvider
	logger       *zerolog.Logger
	ttl          time.Duration
	maxEntries   int
	budget       int

	mu       sync.Mutex
	sessions map[string]*sessionLedger
}

// NewCacheManagerImpl creates a new CacheManagerImpl.
func NewCacheManagerImpl(
	store domain.AugmentationCacheStore,
	tp domain.CurrentTimeProvider,
	logger *zerolog.Logger,
	cfg domain.ScoringConfig,
) *CacheManagerImpl {
	return &CacheManagerImpl{
		store:        store,
		timeProvider: tp,
		logger:       logger,
		ttl:          cfg.CacheTTL,
		maxEntries:   cfg.CacheMaxEntries,
		budget:       cfg.SessionCallBudget,
		sessions:     make(map[string]*sessionLedger),
	}
}

// Lookup implements CacheManager.
func (cm *CacheManagerImpl) Lookup(ctx context.Context, key string) (domain.CacheEntry, bool) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	entry, found, err := cm.store.Get(spanCtx, key)
	if err != nil {
		var corrupted *domain.CacheCorruptionErr
		if errors.As(err, &corrupted) {
			cm.logger.Warn().Str("key", key).Err(err).Msg("ignoring corrupted cache entry")
		} else {
			cm.logger.Error().Str("key", key).Err(err).Msg("cache lookup failed")
		}
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CacheEntry{}, false
	}
	if !found || entry.IsExpired(cm.timeProvider.Now()) {
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Store implements CacheManager.
func (cm *CacheManagerImpl) Store(ctx context.Context, key, payload string) (domain.CacheEntry, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	existing, found := cm.Lookup(spanCtx, key)
	if found && existing.Payload == payload {
		return existing, nil
	}
	if !found {
		cm.makeRoom(spanCtx)
	}

	now := cm.timeProvider.Now()
	entry := domain.CacheEntry{
		Key:       key,
		Payload:   payload,
		CreatedAt: now,
	}
	if cm.ttl > 0 {
		expiresAt := now.Add(cm.ttl)
		entry.ExpiresAt = &expiresAt
	}

	err := cm.store.Put(spanCtx, entry)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CacheEntry{}, fmt.Errorf("failed to store cache entry: %w", err)
	}
	return entry, nil
}

// makeRoom evicts the oldest entries so a new one fits within the capacity.
// The cache stays usable when eviction fails.
func (cm *CacheManagerImpl) makeRoom(ctx context.Context) {
	if cm.maxEntries <= 0 {
		return
	}
	evicted, err := cm.store.EvictOldest(ctx, cm.maxEntries-1)
	if err != nil {
		cm.logger.Warn().Err(err).Int("capacity", cm.maxEntries).Msg("cache eviction failed")
		return
	}
	if evicted > 0 {
		cm.logger.Debug().Int("evicted", evicted).Int("capacity", cm.maxEntries).Msg("evicted oldest cache entries")
	}
}

// Capacity implements CacheManager.
func (cm *CacheManagerImpl) Capacity() int {
	return cm.maxEntries
}

// EntryCount implements CacheManager.
func (cm *CacheManagerImpl) EntryCount(ctx context.Context) (int, error) {
	return cm.store.Count(ctx)
}

// StartSession implements CacheManager.
func (cm *CacheManagerImpl) StartSession(sessionID string) domain.Session {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	ledger := &sessionLedger{startedAt: cm.timeProvider.Now(), remaining: cm.budget}
	cm.sessions[sessionID] = ledger
	return domain.Session{ID: sessionID, StartedAt: ledger.startedAt, RemainingBudget: ledger.remaining}
}

// Session implements CacheManager.
func (cm *CacheManagerImpl) Session(sessionID string) (domain.Session, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	ledger, ok := cm.sessions[sessionID]
	if !ok {
		return domain.Session{}, false
	}
	return domain.Session{ID: sessionID, StartedAt: ledger.startedAt, RemainingBudget: ledger.remaining}, true
}

// RemainingBudget implements CacheManager.
func (cm *CacheManagerImpl) RemainingBudget(sessionID string) int {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if ledger, ok := cm.sessions[sessionID]; ok {
		return ledger.remaining
	}
	return 0
}

// TryConsume implements CacheManager.
func (cm *CacheManagerImpl) TryConsume(sessionID string) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	ledger, ok := cm.sessions[sessionID]
	if !ok || ledger.remaining <= 0 {
		return false
	}
	ledger.remaining--
	return true
}

// InitCacheManager initializes the CacheManager.
type InitCacheManager struct {
	Store        domain.AugmentationCacheStore `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *zerolog.Logger               `resolve:""`
	Config       domain.ScoringConfig          `resolve:""`
}

// Initialize registers the CacheManager in the dependency container.
func (i InitCacheManager) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CacheManager](NewCacheManagerImpl(i.Store, i.TimeProvider, i.Logger, i.Config))
	return ctx, nil
}
