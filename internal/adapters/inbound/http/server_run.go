package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/usecases"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// FilmRecommenderServer is the REST API HTTP server of the film recommender.
type FilmRecommenderServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *zerolog.Logger           `resolve:""`
	StartSessionUseCase     usecases.StartSession     `resolve:""`
	GetSessionUseCase       usecases.GetSession       `resolve:""`
	RecommendFilmsUseCase   usecases.RecommendFilms   `resolve:""`
	GenerateInsightsUseCase usecases.GenerateInsights `resolve:""`
	ListCatalogUseCase      usecases.ListCatalog      `resolve:""`
	GetGatewayStatsUseCase  usecases.GetGatewayStats  `resolve:""`
}

// Handler builds the routed, instrumented and CORS-enabled handler.
func (api FilmRecommenderServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)
	mux.HandleFunc("GET /healthz", api.Healthz)

	routes := map[string]http.HandlerFunc{
		"POST /api/v1/sessions":                      api.StartSession,
		"GET /api/v1/sessions/{id}/budget":           api.GetSessionBudget,
		"POST /api/v1/sessions/{id}/recommendations": api.RecommendFilms,
		"POST /api/v1/sessions/{id}/insights":        api.GenerateInsights,
		"GET /api/v1/catalog":                        api.ListCatalog,
		"GET /api/v1/stats":                          api.GetGatewayStats,
	}
	for pattern, h := range routes {
		mux.Handle(pattern, telemetry.HttpHandler(h, "filmrecommender-api"))
	}

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(mux)
}

// Run starts the HTTP server for the FilmRecommenderServer.
func (api FilmRecommenderServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info().Int("port", api.Port).Msg("FilmRecommenderServer: listening")
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error().Err(err).Msg("FilmRecommenderServer: error during shutdown")
		} else {
			api.Logger.Info().Msg("FilmRecommenderServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the FilmRecommenderServer is ready by performing a health check.
func (api FilmRecommenderServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz answers 200 once the server accepts connections.
func (api FilmRecommenderServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
