package http

import (
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/usecases"
)

// ErrorCode classifies API errors.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL"
)

// Error is the body of a failed request.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Session is a questionnaire session and its remaining generation budget.
type Session struct {
	SessionID       string    `json:"session_id"`
	StartedAt       time.Time `json:"started_at"`
	RemainingBudget int       `json:"remaining_budget"`
}

// RecommendRequest is the body of POST /api/v1/sessions/{id}/recommendations.
type RecommendRequest struct {
	Profile domain.UserProfile `json:"profile"`
	TopK    *int               `json:"top_k,omitempty"`
	Justify bool               `json:"justify,omitempty"`
}

// InsightsRequest is the body of POST /api/v1/sessions/{id}/insights.
type InsightsRequest struct {
	Profile domain.UserProfile `json:"profile"`
}

// Augmentation is a generated, cached or degraded text.
type Augmentation struct {
	Text           string `json:"text"`
	Source         string `json:"source"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}

// CatalogItem is a film of the catalog.
type CatalogItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Creator     string   `json:"creator"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Genres      []string `json:"genres"`
	Moods       []string `json:"moods"`
	Category    string   `json:"category"`
}

// ScoredItem is a ranked film with its component scores.
type ScoredItem struct {
	Rank          int           `json:"rank"`
	Item          CatalogItem   `json:"item"`
	SemanticScore float64       `json:"semantic_score"`
	GenreScore    float64       `json:"genre_score"`
	MoodScore     float64       `json:"mood_score"`
	FinalScore    float64       `json:"final_score"`
	Justification *Augmentation `json:"justification,omitempty"`
}

// RecommendationResp is the ranked answer to a profile.
type RecommendationResp struct {
	SessionID       string        `json:"session_id"`
	Items           []ScoredItem  `json:"items"`
	AnalyzedQuery   string        `json:"analyzed_query"`
	Enrichment      *Augmentation `json:"enrichment,omitempty"`
	RemainingBudget int           `json:"remaining_budget"`
}

// InsightsResp describes how the catalog covers a profile.
type InsightsResp struct {
	SessionID        string                 `json:"session_id"`
	TopItems         []ScoredItem           `json:"top_items"`
	CoverageScore    float64                `json:"coverage_score"`
	Stats            domain.CoverageStats   `json:"stats"`
	WeakCategories   []string               `json:"weak_categories"`
	Distribution     []domain.CategoryScore `json:"distribution"`
	CinephileProfile Augmentation           `json:"cinephile_profile"`
	DiscoveryPlan    Augmentation           `json:"discovery_plan"`
	RemainingBudget  int                    `json:"remaining_budget"`
}

// CatalogResp lists the catalog.
type CatalogResp struct {
	Items []CatalogItem `json:"items"`
	Total int           `json:"total"`
}

// StatsResp reports the generation gateway counters.
type StatsResp = usecases.GatewayReport
