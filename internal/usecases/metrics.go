package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	LLMTokensUsed         metric.Int64Counter
	AugmentationRequests  metric.Int64Counter
	GenerationCalls       metric.Int64Counter
	RecommendationLatency metric.Float64Histogram
	GenerationLatency     metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	AugmentationRequests, err = meter.Int64Counter(
		"augmentation_requests_total",
		metric.WithDescription("Augmentation requests by kind and source"),
	)
	if err != nil {
		panic(err)
	}

	// Each attempt counts, retries included.
	GenerationCalls, err = meter.Int64Counter(
		"generation_calls_total",
		metric.WithDescription("Calls made to the generative service by outcome"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationLatency, err = meter.Float64Histogram(
		"recommendation_duration_seconds",
		metric.WithDescription("Time spent ranking the catalog for one profile"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	GenerationLatency, err = meter.Float64Histogram(
		"generation_duration_seconds",
		metric.WithDescription("Round trip of one call to the generative service"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordAugmentation records the outcome of one augmentation request.
func RecordAugmentation(ctx context.Context, kind domain.AugmentationKind, source domain.AugmentationSource) {
	AugmentationRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("source", string(source)),
	))
}

// RecordGenerationCall records one call to the generative service and how long it took.
func RecordGenerationCall(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	GenerationCalls.Add(ctx, 1, attrs)
	GenerationLatency.Record(ctx, elapsed.Seconds(), attrs)
}
