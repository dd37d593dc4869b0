package http

import (
	"net/http"
)

func (api FilmRecommenderServer) ListCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := api.ListCatalogUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Error().Err(err).Msg("error listing catalog")
		respondError(w, toError(err))
		return
	}

	resp := CatalogResp{
		Items: make([]CatalogItem, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toCatalogItem(item))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api FilmRecommenderServer) GetGatewayStats(w http.ResponseWriter, r *http.Request) {
	report, err := api.GetGatewayStatsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Error().Err(err).Msg("error reading gateway stats")
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, StatsResp(report))
}
