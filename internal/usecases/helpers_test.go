package usecases

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain/mocks"
	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func fixedClock(t *testing.T) *domain_mocks.MockCurrentTimeProvider {
	tp := domain_mocks.NewMockCurrentTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	return tp
}

// memCacheStore is an in-memory domain.AugmentationCacheStore.
type memCacheStore struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
	puts    int
}

func newMemCacheStore() *memCacheStore {
	return &memCacheStore{entries: map[string]domain.CacheEntry{}}
}

func (s *memCacheStore) Get(_ context.Context, key string) (domain.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

func (s *memCacheStore) Put(_ context.Context, entry domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Key] = entry
	s.puts++
	return nil
}

func (s *memCacheStore) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), nil
}

func (s *memCacheStore) EvictOldest(_ context.Context, keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := slices.Collect(maps.Values(s.entries))
	if len(entries) <= keep {
		return 0, nil
	}
	slices.SortFunc(entries, func(a, b domain.CacheEntry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.Key, a.Key)
	})
	for _, e := range entries[max(keep, 0):] {
		delete(s.entries, e.Key)
	}
	return len(entries) - max(keep, 0), nil
}

func (s *memCacheStore) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.entries))
}

func (s *memCacheStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

func newTestCacheManager(t *testing.T, store domain.AugmentationCacheStore, budget int) *CacheManagerImpl {
	cfg := domain.DefaultScoringConfig()
	cfg.SessionCallBudget = budget
	return NewCacheManagerImpl(store, fixedClock(t), nopLogger(), cfg)
}

func chatResponse(content string) domain.LLMChatResponse {
	return domain.LLMChatResponse{
		Content: content,
		Usage:   domain.LLMUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
}

// testCatalog returns four films laid out on a 2D unit circle.
func testCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID: "1", Title: "Inception", Creator: "Christopher Nolan", Year: 2010,
			Description: "A thief who steals corporate secrets through dream-sharing technology.",
			Genres:      []string{"Science-Fiction", "Thriller"}, Moods: []string{"Intellectual"},
			Category: "Science-Fiction", Vector: []float64{1, 0},
		},
		{
			ID: "2", Title: "Amelie", Creator: "Jean-Pierre Jeunet", Year: 2001,
			Description: "A shy waitress decides to change the lives of those around her.",
			Genres:      []string{"Comedy", "Romance"}, Moods: []string{"Light"},
			Category: "Comedy", Vector: []float64{0, 1},
		},
		{
			ID: "3", Title: "Interstellar", Creator: "Christopher Nolan", Year: 2014,
			Description: "Explorers travel through a wormhole in search of a new home for humanity.",
			Genres:      []string{"Science-Fiction", "Drama"}, Moods: []string{"Intellectual", "Emotional"},
			Category: "Science-Fiction", Vector: []float64{0.8, 0.6},
		},
		{
			ID: "10", Title: "The Shining", Creator: "Stanley Kubrick", Year: 1980,
			Description: "A family heads to an isolated hotel where a sinister presence lives.",
			Genres:      []string{"Horror"}, Moods: []string{"Dark"},
			Category: "Horror", Vector: []float64{-1, 0},
		},
	}
}

func testIndex(t *testing.T) *domain.CatalogIndex {
	t.Helper()
	idx, err := domain.NewCatalogIndex(testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	return idx
}
