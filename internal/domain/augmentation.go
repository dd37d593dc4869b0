package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// AugmentationKind identifies which generated text is requested.
type AugmentationKind string

const (
	AugmentationKind_QueryEnrichment   AugmentationKind = "query_enrichment"
	AugmentationKind_ItemJustification AugmentationKind = "item_justification"
	AugmentationKind_CinephileProfile  AugmentationKind = "cinephile_profile"
	AugmentationKind_DiscoveryPlan     AugmentationKind = "discovery_plan"
)

// AugmentationSource tells where an augmentation text came from.
type AugmentationSource string

const (
	AugmentationSource_Generated AugmentationSource = "generated"
	AugmentationSource_Cached    AugmentationSource = "cached"
	AugmentationSource_Degraded  AugmentationSource = "degraded"
)

// DegradedReason explains why a degraded augmentation was returned.
type DegradedReason string

const (
	DegradedReason_BudgetExhausted    DegradedReason = "budget_exhausted"
	DegradedReason_GatewayUnavailable DegradedReason = "gateway_unavailable"
)

// AugmentationRequest describes one generation. Two requests with the same
// content produce the same cache key, whatever the order of ItemIDs.
type AugmentationRequest struct {
	Kind    AugmentationKind
	Model   string
	ItemIDs []string
	Profile UserProfile
	// Subject discriminates requests of the same kind, e.g. the justified item id.
	Subject string
}

// Key returns the hex SHA-256 content address of the request.
func (r AugmentationRequest) Key() string {
	ids := make([]string, 0, len(r.ItemIDs))
	for _, id := range r.ItemIDs {
		ids = append(ids, strings.TrimSpace(id))
	}
	slices.SortFunc(ids, CompareItemIDs)

	doc := struct {
		Kind          AugmentationKind `json:"kind"`
		Model         string           `json:"model"`
		ItemIDs       []string         `json:"item_ids"`
		ProfileDigest string           `json:"profile_digest"`
		Subject       string           `json:"subject"`
	}{
		Kind:          r.Kind,
		Model:         r.Model,
		ItemIDs:       ids,
		ProfileDigest: r.Profile.Digest(),
		Subject:       strings.TrimSpace(r.Subject),
	}
	return hashJSON(doc)
}

// Digest returns a stable hash of the profile content. Rating keys are compared
// case-insensitively, surrounding whitespace is ignored and the filter lists are
// order-independent.
func (p UserProfile) Digest() string {
	normalize := func(ratings map[string]int) map[string]int {
		res := make(map[string]int, len(ratings))
		// sorted, so a tag rated twice keeps the rating lookupRating uses
		for _, k := range slices.Sorted(maps.Keys(ratings)) {
			if _, seen := res[normalizeTag(k)]; !seen {
				res[normalizeTag(k)] = ratings[k]
			}
		}
		return res
	}
	excluded := canonicalTexts(p.Filters.ExcludedItemIDs)
	slices.SortFunc(excluded, CompareItemIDs)

	doc := struct {
		Query          string         `json:"query"`
		Genres         map[string]int `json:"genres"`
		Moods          map[string]int `json:"moods"`
		Eras           []Era          `json:"eras"`
		Creators       []string       `json:"creators"`
		ReferenceItems []string       `json:"reference_items"`
		Avoid          string         `json:"avoid"`
		Excluded       []string       `json:"excluded"`
	}{
		Query:          strings.TrimSpace(p.Query),
		Genres:         normalize(p.GenreRatings),
		Moods:          normalize(p.MoodRatings),
		Eras:           canonicalEras(p.Filters.Eras),
		Creators:       canonicalTexts(p.Filters.Creators),
		ReferenceItems: canonicalTexts(p.Filters.ReferenceItems),
		Avoid:          strings.TrimSpace(p.Filters.Avoid),
		Excluded:       excluded,
	}
	return hashJSON(doc)
}

func hashJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// only plain strings, ints and maps of them are hashed
		panic(err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Augmentation is the outcome of a generation request.
type Augmentation struct {
	Key            string             `json:"key"`
	Text           string             `json:"text"`
	Source         AugmentationSource `json:"source"`
	DegradedReason DegradedReason     `json:"degraded_reason,omitempty"`
}

// IsDegraded reports whether the text is the template fallback.
func (a Augmentation) IsDegraded() bool {
	return a.Source == AugmentationSource_Degraded
}

// CacheEntry is a stored generation payload. A nil ExpiresAt never expires.
type CacheEntry struct {
	Key       string     `json:"key"`
	Payload   string     `json:"payload"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// IsExpired reports whether the entry is past its expiry at now.
func (e CacheEntry) IsExpired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// AugmentationCacheStore is the durable key-value store behind the cache manager.
// Get returns a *CacheCorruptionErr when the stored bytes cannot be decoded.
type AugmentationCacheStore interface {
	Get(ctx context.Context, key string) (CacheEntry, bool, error)
	// Put inserts or replaces the entry atomically.
	Put(ctx context.Context, entry CacheEntry) error
	// Count returns the number of stored entries, expired ones included.
	Count(ctx context.Context) (int, error)
	// EvictOldest deletes the entries with the oldest CreatedAt until at most keep remain
	// and returns how many were deleted.
	EvictOldest(ctx context.Context, keep int) (int, error)
}

// Session is one questionnaire session with its own generation budget.
type Session struct {
	ID              string    `json:"session_id"`
	StartedAt       time.Time `json:"started_at"`
	RemainingBudget int       `json:"remaining_budget"`
}

// CurrentTimeProvider is the clock behind session start times and cache expiry.
type CurrentTimeProvider interface {
	Now() time.Time
}
