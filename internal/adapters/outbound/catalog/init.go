package catalog

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// InitCatalogSource registers the domain.CatalogSource. An empty CATALOG_PATH
// selects the embedded catalog.
type InitCatalogSource struct {
	Logger *zerolog.Logger `resolve:""`
	Path   string          `config:"CATALOG_PATH" default:"-"`
}

// Initialize registers the catalog source in the dependency container.
func (i InitCatalogSource) Initialize(ctx context.Context) (context.Context, error) {
	source := NewEmbeddedCSVSource()
	if i.Path != "" && i.Path != "-" {
		source = NewFileCSVSource(i.Path)
	}

	i.Logger.Info().Str("source", source.Name()).Msg("InitCatalogSource: catalog source selected")
	depend.Register[domain.CatalogSource](source)
	return ctx, nil
}
