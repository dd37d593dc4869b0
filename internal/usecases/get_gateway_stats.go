package usecases

import (
	"context"
	"math"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GatewayReport is the gateway counters plus the size of the cache.
// CacheCapacity is 0 when the cache is unbounded, and so is CacheUsagePercent.
type GatewayReport struct {
	GatewayStats
	CacheEntries      int     `json:"cache_entries"`
	CacheCapacity     int     `json:"cache_capacity"`
	CacheUsagePercent float64 `json:"cache_usage_percent"`
}

// GetGatewayStats reports the usage of the generation gateway.
type GetGatewayStats interface {
	Query(ctx context.Context) (GatewayReport, error)
}

// GetGatewayStatsImpl is the implementation of the GetGatewayStats use case.
type GetGatewayStatsImpl struct {
	gateway GenerationGateway
	cache   CacheManager
}

// NewGetGatewayStatsImpl creates a new GetGatewayStatsImpl.
func NewGetGatewayStatsImpl(gw GenerationGateway, cm CacheManager) GetGatewayStatsImpl {
	return GetGatewayStatsImpl{gateway: gw, cache: cm}
}

// Query returns the current counters.
func (gs GetGatewayStatsImpl) Query(ctx context.Context) (GatewayReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	entries, err := gs.cache.EntryCount(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return GatewayReport{}, err
	}
	report := GatewayReport{
		GatewayStats:  gs.gateway.Stats(),
		CacheEntries:  entries,
		CacheCapacity: gs.cache.Capacity(),
	}
	if report.CacheCapacity > 0 {
		report.CacheUsagePercent = math.Round(float64(entries)/float64(report.CacheCapacity)*10000) / 100
	}
	return report, nil
}

// InitGetGatewayStats initializes the GetGatewayStats use case.
type InitGetGatewayStats struct {
	Gateway      GenerationGateway `resolve:""`
	CacheManager CacheManager      `resolve:""`
}

// Initialize registers the GetGatewayStats use case in the dependency container.
func (i InitGetGatewayStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetGatewayStats](NewGetGatewayStatsImpl(i.Gateway, i.CacheManager))
	return ctx, nil
}
