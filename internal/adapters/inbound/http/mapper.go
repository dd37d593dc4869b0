package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	errResp := ErrorResp{}
	errResp.Error.Code = BADREQUEST
	errResp.Error.Message = message
	return errResp
}

func toSession(s domain.Session) Session {
	return Session{
		SessionID:       s.ID,
		StartedAt:       s.StartedAt,
		RemainingBudget: s.RemainingBudget,
	}
}

func toCatalogItem(item domain.CatalogItem) CatalogItem {
	return CatalogItem{
		ID:          item.ID,
		Title:       item.Title,
		Creator:     item.Creator,
		Year:        item.Year,
		Description: item.Description,
		Keywords:    nonNil(item.Keywords),
		Genres:      nonNil(item.Genres),
		Moods:       nonNil(item.Moods),
		Category:    item.Category,
	}
}

func toScoredItem(s domain.ScoredItem) ScoredItem {
	return ScoredItem{
		Rank:          s.Rank,
		Item:          toCatalogItem(s.Item),
		SemanticScore: s.Semantic,
		GenreScore:    s.Genre,
		MoodScore:     s.Mood,
		FinalScore:    s.Final,
	}
}

func toAugmentation(a domain.Augmentation) Augmentation {
	return Augmentation{
		Text:           a.Text,
		Source:         string(a.Source),
		DegradedReason: string(a.DegradedReason),
	}
}

func toAugmentationPtr(a *domain.Augmentation) *Augmentation {
	if a == nil {
		return nil
	}
	res := toAugmentation(*a)
	return &res
}

func toRecommendationResp(res usecases.RecommendationResult) RecommendationResp {
	resp := RecommendationResp{
		SessionID:       res.SessionID,
		Items:           make([]ScoredItem, 0, len(res.Items)),
		AnalyzedQuery:   res.AnalyzedQuery,
		Enrichment:      toAugmentationPtr(res.Enrichment),
		RemainingBudget: res.RemainingBudget,
	}
	for _, item := range res.Items {
		scored := toScoredItem(item.ScoredItem)
		scored.Justification = toAugmentationPtr(item.Justification)
		resp.Items = append(resp.Items, scored)
	}
	return resp
}

func toInsightsResp(in usecases.Insights) InsightsResp {
	resp := InsightsResp{
		SessionID:        in.SessionID,
		TopItems:         make([]ScoredItem, 0, len(in.TopItems)),
		CoverageScore:    in.CoverageScore,
		Stats:            in.Stats,
		WeakCategories:   nonNil(in.WeakCategories),
		Distribution:     in.Distribution,
		CinephileProfile: toAugmentation(in.CinephileProfile),
		DiscoveryPlan:    toAugmentation(in.DiscoveryPlan),
		RemainingBudget:  in.RemainingBudget,
	}
	if resp.Distribution == nil {
		resp.Distribution = []domain.CategoryScore{}
	}
	for _, item := range in.TopItems {
		resp.TopItems = append(resp.TopItems, toScoredItem(item))
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
