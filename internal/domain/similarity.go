package domain

import (
	"context"
	"runtime"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/common"
	"golang.org/x/sync/errgroup"
)

// NeutralScore is used whenever a component score cannot be derived.
const NeutralScore = 0.5

// minParallelChunk is the smallest catalog slice scored by one goroutine.
const minParallelChunk = 256

// SemanticScore maps the cosine similarity of two vectors from [-1, 1] into [0, 1].
// Zero-norm or mismatched vectors score NeutralScore.
func SemanticScore(query, item []float64) float64 {
	cos, ok := common.CosineSimilarity(query, item)
	if !ok {
		return NeutralScore
	}
	return Clamp01((cos + 1) / 2)
}

// ScoreSemantic computes the semantic score of every indexed item against the query vector.
// The result is keyed by item id and does not depend on evaluation order.
func ScoreSemantic(ctx context.Context, query []float64, items []IndexedVector) (map[string]float64, error) {
	scores := make([]float64, len(items))

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(items) + workers - 1) / workers
	if chunk < minParallelChunk {
		chunk = minParallelChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = SemanticScore(query, items[i].Vector)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make(map[string]float64, len(items))
	for i, item := range items {
		res[item.ID] = scores[i]
	}
	return res, nil
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
