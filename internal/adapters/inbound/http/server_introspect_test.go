package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospectHandler(t *testing.T) {
	const graph = "graph TD;\nInitCatalogIndex-->FilmRecommenderServer;"

	tests := map[string]struct {
		registerDependencies func(t *testing.T)
		expectedCode         int
		expectedType         string
		shouldContain        []string
		shouldNotContain     []string
	}{
		"graph-only": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed(graph, "introspection-graph-mermaid")
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>Film Recommender Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>Film Recommender Introspection Graph</h1>",
				`mermaid.render('mermaid-svg-id', "graph TD;\nInitCatalogIndex--\u003eFilmRecommenderServer;");`,
			},
			shouldNotContain: []string{"Catalog index:"},
		},
		"graph-with-catalog-index": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed(graph, "introspection-graph-mermaid")
				second := inception
				second.ID = "2"
				second.Vector = []float64{0.3, 0.4}
				idx, err := domain.NewCatalogIndex([]domain.CatalogItem{inception, second})
				require.NoError(t, err)
				depend.Register(idx)
			},
			expectedCode:  http.StatusOK,
			expectedType:  "text/html; charset=utf-8",
			shouldContain: []string{"Catalog index: 2 items, 2 dimensions"},
		},
		"failed-to-resolve-dependency": {
			registerDependencies: func(t *testing.T) {},
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)
			tt.registerDependencies(t)

			req := httptest.NewRequest(http.MethodGet, "/introspect", nil)
			w := httptest.NewRecorder()

			IntrospectHandler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, expected := range tt.shouldContain {
				assert.Contains(t, body, expected)
			}
			for _, unexpected := range tt.shouldNotContain {
				assert.NotContains(t, body, unexpected)
			}
		})
	}
}
