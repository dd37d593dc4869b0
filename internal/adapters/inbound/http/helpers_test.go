package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/rs/zerolog"
)

var (
	startedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	inception = domain.CatalogItem{
		ID:          "1",
		Title:       "Inception",
		Creator:     "Christopher Nolan",
		Year:        2010,
		Description: "A thief plants an idea inside a dream.",
		Keywords:    []string{"dreams", "heist"},
		Genres:      []string{"Science-Fiction", "Thriller"},
		Moods:       []string{"Intellectual"},
		Category:    "Science-Fiction",
		Vector:      []float64{0.1, 0.2},
	}
	amelie = domain.CatalogItem{
		ID:          "3",
		Title:       "Amelie",
		Creator:     "Jean-Pierre Jeunet",
		Year:        2001,
		Description: "A shy waitress helps strangers.",
		Genres:      []string{"Comedy"},
		Category:    "Comedy",
	}

	testProfile = domain.UserProfile{
		Query:        "mind-bending science fiction where dreams and reality blur together",
		GenreRatings: map[string]int{"Science-Fiction": 5},
	}
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}
