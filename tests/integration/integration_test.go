//go:build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	rest "github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/app"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080/api/v1"

var modelRunner = &initFakeModelRunner{}

func TestMain(m *testing.M) {
	filmApp := app.NewFilmRecommenderApp(
		&initEnvVars{
			envVars: map[string]string{
				"CACHE_BACKEND":       "postgres",
				"DB_NAME":             "filmrecommender",
				"DB_USER":             "postgres",
				"DB_PASS":             "postgres",
				"LLM_MODEL":           "ai/gemma3",
				"LLM_EMBEDDING_MODEL": "ai/embeddinggemma",
				"SESSION_CALL_BUDGET": "3",
				"LOG_LEVEL":           "warn",
			},
		},
		modelRunner,
		&InitDockerCompose{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := filmApp.RunAsync(cancelCtx)

	err := filmApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("FilmRecommender app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("FilmRecommender app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("FilmRecommender app shutdown with error: %v", err)
		} else {
			log.Printf("FilmRecommender app shut down gracefully")
		}
	}

	os.Exit(code)
}

func TestFilmRecommender_RestAPI(t *testing.T) {
	profile := domain.UserProfile{
		Query:        "a mind-bending heist inside dreams",
		GenreRatings: map[string]int{"Science-Fiction": 5, "Thriller": 4},
		MoodRatings:  map[string]int{"Intellectual": 5},
	}

	t.Run("list-catalog", func(t *testing.T) {
		var catalog rest.CatalogResp
		status := call(t, http.MethodGet, "/catalog", nil, &catalog)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 20, catalog.Total)
		assert.Len(t, catalog.Items, 20)
	})

	var session rest.Session
	t.Run("start-session", func(t *testing.T) {
		status := call(t, http.MethodPost, "/sessions", nil, &session)
		require.Equal(t, http.StatusCreated, status)
		require.NotEmpty(t, session.SessionID)
		assert.Equal(t, 3, session.RemainingBudget)
	})

	var first rest.RecommendationResp
	t.Run("recommend-with-justifications", func(t *testing.T) {
		status := call(t, http.MethodPost, "/sessions/"+session.SessionID+"/recommendations",
			rest.RecommendRequest{Profile: profile, Justify: true}, &first)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, first.Items, 3)

		for i, item := range first.Items {
			assert.Equal(t, i+1, item.Rank)
			assert.GreaterOrEqual(t, item.FinalScore, 0.0)
			assert.LessOrEqual(t, item.FinalScore, 1.0)
			require.NotNil(t, item.Justification)
			assert.NotEmpty(t, item.Justification.Text)
			if i > 0 {
				assert.LessOrEqual(t, item.FinalScore, first.Items[i-1].FinalScore)
			}
		}
		assert.GreaterOrEqual(t, first.RemainingBudget, 0)
		assert.Less(t, first.RemainingBudget, 3)
	})

	t.Run("repeat-request-is-served-from-cache", func(t *testing.T) {
		var before rest.StatsResp
		require.Equal(t, http.StatusOK, call(t, http.MethodGet, "/stats", nil, &before))
		chatCalls := modelRunner.chatCalls.Load()

		var second rest.RecommendationResp
		status := call(t, http.MethodPost, "/sessions/"+session.SessionID+"/recommendations",
			rest.RecommendRequest{Profile: profile, Justify: true}, &second)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, second.Items, len(first.Items))
		for i := range first.Items {
			assert.Equal(t, first.Items[i].Item.ID, second.Items[i].Item.ID)
		}

		var after rest.StatsResp
		require.Equal(t, http.StatusOK, call(t, http.MethodGet, "/stats", nil, &after))
		assert.Greater(t, after.CacheHits, before.CacheHits)
		assert.Greater(t, after.CacheEntries, 0)
		assert.Equal(t, 100, after.CacheCapacity)
		assert.LessOrEqual(t, after.CacheEntries, after.CacheCapacity)
		assert.Equal(t, chatCalls, modelRunner.chatCalls.Load(), "cached augmentations must not reach the model")
	})

	t.Run("insights", func(t *testing.T) {
		var insights rest.InsightsResp
		status := call(t, http.MethodPost, "/sessions/"+session.SessionID+"/insights",
			rest.InsightsRequest{Profile: profile}, &insights)
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, insights.TopItems)
		assert.GreaterOrEqual(t, insights.CoverageScore, 0.0)
		assert.LessOrEqual(t, insights.CoverageScore, 1.0)
	})

	t.Run("unknown-session", func(t *testing.T) {
		var errResp rest.ErrorResp
		status := call(t, http.MethodGet, "/sessions/does-not-exist/budget", nil, &errResp)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, rest.NOTFOUND, errResp.Error.Code)
	})

	t.Run("invalid-profile", func(t *testing.T) {
		var errResp rest.ErrorResp
		status := call(t, http.MethodPost, "/sessions/"+session.SessionID+"/recommendations",
			rest.RecommendRequest{Profile: domain.UserProfile{}}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, rest.BADREQUEST, errResp.Error.Code)
	})
}

func call(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, fmt.Sprintf("%s%s", baseURL, path), reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "failed to call %s %s", method, path)
	defer resp.Body.Close() //nolint:errcheck

	if out != nil && resp.ContentLength != 0 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
