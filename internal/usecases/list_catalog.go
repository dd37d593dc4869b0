package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListCatalog returns the recommendable items.
type ListCatalog interface {
	Query(ctx context.Context) ([]domain.CatalogItem, error)
}

// ListCatalogImpl is the implementation of the ListCatalog use case.
type ListCatalogImpl struct {
	index *domain.CatalogIndex
}

// NewListCatalogImpl creates a new ListCatalogImpl.
func NewListCatalogImpl(idx *domain.CatalogIndex) ListCatalogImpl {
	return ListCatalogImpl{index: idx}
}

// Query returns the items in catalog order.
func (lc ListCatalogImpl) Query(ctx context.Context) ([]domain.CatalogItem, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return lc.index.Items(), nil
}

// InitListCatalog initializes the ListCatalog use case.
type InitListCatalog struct {
	Index *domain.CatalogIndex `resolve:""`
}

// Initialize registers the ListCatalog use case in the dependency container.
func (i InitListCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListCatalog](NewListCatalogImpl(i.Index))
	return ctx, nil
}
