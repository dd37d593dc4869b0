package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/badgerstore"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/catalog"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/usecases"
)

// NewFilmRecommenderApp creates and returns a new instance of the film recommender application.
// Extra initializers run first, which lets tests register doubles before the real adapters.
func NewFilmRecommenderApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitConfigProviders{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&badgerstore.InitBadgerCache{},
			&postgres.InitDB{},
			&modelrunner.InitModelRunner{},
			&catalog.InitCatalogSource{},

			&usecases.InitScoringConfig{},
			&usecases.InitCacheManager{},
			&usecases.InitGenerationGateway{},
			&usecases.InitQueryEncoder{},
			&usecases.InitCatalogIndex{},

			&usecases.InitSessions{},
			&usecases.InitRecommendFilms{},
			&usecases.InitGenerateInsights{},
			&usecases.InitListCatalog{},
			&usecases.InitGetGatewayStats{},
		).
		Host(
			&http.FilmRecommenderServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
