package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizeCatalogItem generates a semantic vector for one catalog item.
	VectorizeCatalogItem(ctx context.Context, model string, item CatalogItem) (EmbeddingVector, error)
	// VectorizeQuery generates a semantic vector for one user query.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}

// EmbeddingCacheStore memoizes catalog embeddings across restarts.
// Keys are content hashes of the embedded text and the model.
type EmbeddingCacheStore interface {
	// GetEmbedding returns the stored vector, or false when the key is unknown.
	GetEmbedding(ctx context.Context, key string) ([]float64, bool, error)
	// PutEmbedding stores the vector under key, replacing any previous value.
	PutEmbedding(ctx context.Context, key string, vector []float64) error
}
