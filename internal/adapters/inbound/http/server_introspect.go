package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type catalogSummary struct {
	Items     int
	Dimension int
}

type introspectPage struct {
	Title   string
	Graph   string
	Catalog *catalogSummary
}

// IntrospectHandler renders the dependency graph of the running application,
// with the size of the catalog index once it has been built.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title: "Film Recommender Introspection Graph",
		Graph: mermaidGraph,
	}
	if idx, err := depend.Resolve[*domain.CatalogIndex](); err == nil && idx != nil {
		page.Catalog = &catalogSummary{Items: idx.Len(), Dimension: idx.Dimension()}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
