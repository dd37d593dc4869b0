package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/usecases"
)

func (api FilmRecommenderServer) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := api.StartSessionUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Error().Err(err).Msg("error starting session")
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusCreated, toSession(session))
}

func (api FilmRecommenderServer) GetSessionBudget(w http.ResponseWriter, r *http.Request) {
	session, err := api.GetSessionUseCase.Query(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toSession(session))
}

func (api FilmRecommenderServer) RecommendFilms(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	opts := usecases.RecommendOptions{Justify: req.Justify}
	if req.TopK != nil {
		if *req.TopK <= 0 {
			respondError(w, badRequest("top_k must be positive"))
			return
		}
		opts.TopK = *req.TopK
	}

	res, err := api.RecommendFilmsUseCase.Execute(r.Context(), r.PathValue("id"), req.Profile, opts)
	if err != nil {
		api.Logger.Warn().Err(err).Str("session_id", r.PathValue("id")).Msg("error recommending films")
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toRecommendationResp(res))
}

func (api FilmRecommenderServer) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	var req InsightsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	insights, err := api.GenerateInsightsUseCase.Execute(r.Context(), r.PathValue("id"), req.Profile)
	if err != nil {
		api.Logger.Warn().Err(err).Str("session_id", r.PathValue("id")).Msg("error generating insights")
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toInsightsResp(insights))
}
