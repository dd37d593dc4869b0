package modelrunner

import (
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
)

// EmbeddingGenerator builds the model-specific inputs for catalog items and queries.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the input embedded for a catalog item.
	GenerateIndexingPrompt(item domain.CatalogItem) string
	// GenerateSearchPrompt creates the input embedded for a user query.
	GenerateSearchPrompt(query string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct{}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding uses the document and query task prefixes EmbeddingGemma was trained with.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateIndexingPrompt(item domain.CatalogItem) string {
	return fmt.Sprintf("title: %s | text: %s", item.Title, item.IndexingText())
}

func (a gemmaEmbedding) GenerateSearchPrompt(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

// defaultEmbeddingGenerator embeds the raw texts.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(item domain.CatalogItem) string {
	return item.IndexingText()
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(query string) string {
	return query
}
