package usecases

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/common"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// maxGenerationAttempts is the first call plus one retry.
const maxGenerationAttempts = 2

// AugmentationCall is one augmentation to resolve through the gateway.
type AugmentationCall struct {
	Request  domain.AugmentationRequest
	Messages []domain.LLMChatMessage
	// Fallback is the text returned when nothing could be generated.
	Fallback string
}

// GatewayStats are the counters of the generation gateway since startup.
type GatewayStats struct {
	Requests        int64 `json:"requests"`
	CacheHits       int64 `json:"cache_hits"`
	Generated       int64 `json:"generated"`
	Degraded        int64 `json:"degraded"`
	GenerationCalls int64 `json:"generation_calls"`
	FailedCalls     int64 `json:"failed_calls"`
}

// GenerationGateway resolves augmentations from the cache or, budget permitting,
// from the generative service. It never fails: when no text can be produced it
// returns the call fallback marked as degraded.
type GenerationGateway interface {
	Augment(ctx context.Context, sessionID string, call AugmentationCall) domain.Augmentation
	Stats() GatewayStats
}

type gatewayCounters struct {
	requests, cacheHits, generated, degraded, calls, failedCalls atomic.Int64
}

// GenerationGatewayImpl is the default GenerationGateway.
type GenerationGatewayImpl struct {
	cache     CacheManager
	llmClient domain.LLMClient
	logger    *zerolog.Logger
	model     string
	timeout   time.Duration

	flights  singleflight.Group
	counters gatewayCounters
}

// NewGenerationGatewayImpl creates a new GenerationGatewayImpl.
func NewGenerationGatewayImpl(
	cm CacheManager,
	c domain.LLMClient,
	logger *zerolog.Logger,
	model string,
	timeout time.Duration,
) *GenerationGatewayImpl {
	return &GenerationGatewayImpl{
		cache:     cm,
		llmClient: c,
		logger:    logger,
		model:     model,
		timeout:   timeout,
	}
}

// Augment implements GenerationGateway.
func (g *GenerationGatewayImpl) Augment(ctx context.Context, sessionID string, call AugmentationCall) domain.Augmentation {
	call.Request.Model = g.model
	key := call.Request.Key()
	spanCtx, span := telemetry.StartForSession(ctx, sessionID,
		telemetry.AugmentationKindKey.String(string(call.Request.Kind)),
		telemetry.AugmentationKeyKey.String(key),
	)
	defer span.End()

	g.counters.requests.Add(1)

	if entry, found := g.cache.Lookup(spanCtx, key); found {
		return g.finish(spanCtx, call.Request.Kind, domain.Augmentation{
			Key: key, Text: entry.Payload, Source: domain.AugmentationSource_Cached,
		})
	}

	// Concurrent requests for the same key share one generation, charged to the leader's session.
	aug, leader, led := g.share(spanCtx, key, key, sessionID, call)
	if !led && leader != sessionID && aug.IsDegraded() {
		// a degraded outcome belongs to the leader's session, this one still has its own budget
		aug, _, led = g.share(spanCtx, key+"\x00"+sessionID, key, sessionID, call)
	}
	if !led && aug.Source == domain.AugmentationSource_Generated {
		aug.Source = domain.AugmentationSource_Cached
	}

	span.SetAttributes(telemetry.AugmentationSourceKey.String(string(aug.Source)))
	return g.finish(spanCtx, call.Request.Kind, aug)
}

type flightResult struct {
	aug       domain.Augmentation
	sessionID string
}

// share runs generate once per flight key and reports which session led the flight.
func (g *GenerationGatewayImpl) share(ctx context.Context, flightKey, key, sessionID string, call AugmentationCall) (domain.Augmentation, string, bool) {
	led := false
	v, _, _ := g.flights.Do(flightKey, func() (any, error) {
		led = true
		return flightResult{aug: g.generate(ctx, sessionID, key, call), sessionID: sessionID}, nil
	})
	res := v.(flightResult)
	return res.aug, res.sessionID, led
}

// Stats implements GenerationGateway.
func (g *GenerationGatewayImpl) Stats() GatewayStats {
	return GatewayStats{
		Requests:        g.counters.requests.Load(),
		CacheHits:       g.counters.cacheHits.Load(),
		Generated:       g.counters.generated.Load(),
		Degraded:        g.counters.degraded.Load(),
		GenerationCalls: g.counters.calls.Load(),
		FailedCalls:     g.counters.failedCalls.Load(),
	}
}

func (g *GenerationGatewayImpl) generate(ctx context.Context, sessionID, key string, call AugmentationCall) domain.Augmentation {
	// The result must reach the cache even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	if entry, found := g.cache.Lookup(ctx, key); found {
		return domain.Augmentation{Key: key, Text: entry.Payload, Source: domain.AugmentationSource_Cached}
	}

	if !g.cache.TryConsume(sessionID) {
		g.logger.Info().
			Str("session_id", sessionID).
			Str("kind", string(call.Request.Kind)).
			Msg("generation budget exhausted, using fallback")
		return degraded(key, call.Fallback, domain.DegradedReason_BudgetExhausted)
	}

	text, err := g.callWithRetry(ctx, call.Messages)
	if err != nil {
		g.logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Str("kind", string(call.Request.Kind)).
			Msg("generation failed, using fallback")
		return degraded(key, call.Fallback, domain.DegradedReason_GatewayUnavailable)
	}

	if _, err := g.cache.Store(ctx, key, text); err != nil {
		g.logger.Error().Err(err).Str("key", key).Msg("failed to cache generated text")
	}
	return domain.Augmentation{Key: key, Text: text, Source: domain.AugmentationSource_Generated}
}

func (g *GenerationGatewayImpl) callWithRetry(ctx context.Context, messages []domain.LLMChatMessage) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		g.counters.calls.Add(1)
		start := time.Now()
		text, err := g.call(ctx, messages)
		if err == nil {
			RecordGenerationCall(ctx, "success", time.Since(start))
			return text, nil
		}

		gwErr := asGatewayErr(err)
		g.counters.failedCalls.Add(1)
		RecordGenerationCall(ctx, string(gwErr.Kind), time.Since(start))
		g.logger.Debug().Err(gwErr).Int("attempt", attempt).Msg("generation attempt failed")
		lastErr = gwErr
	}
	return "", lastErr
}

func (g *GenerationGatewayImpl) call(ctx context.Context, messages []domain.LLMChatMessage) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.llmClient.Chat(callCtx, domain.LLMChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: common.Ptr(0.7),
		TopP:        common.Ptr(0.95),
	})
	if err != nil {
		return "", err
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", domain.NewGatewayErr(domain.GatewayErrKind_ServiceError, errors.New("empty completion"))
	}
	return text, nil
}

func (g *GenerationGatewayImpl) finish(ctx context.Context, kind domain.AugmentationKind, aug domain.Augmentation) domain.Augmentation {
	switch aug.Source {
	case domain.AugmentationSource_Cached:
		g.counters.cacheHits.Add(1)
	case domain.AugmentationSource_Generated:
		g.counters.generated.Add(1)
	case domain.AugmentationSource_Degraded:
		g.counters.degraded.Add(1)
	}
	RecordAugmentation(ctx, kind, aug.Source)
	return aug
}

func degraded(key, fallback string, reason domain.DegradedReason) domain.Augmentation {
	return domain.Augmentation{
		Key:            key,
		Text:           fallback,
		Source:         domain.AugmentationSource_Degraded,
		DegradedReason: reason,
	}
}

// asGatewayErr classifies err. Deadline errors are timeouts, anything unknown is a service error.
func asGatewayErr(err error) *domain.GatewayErr {
	var gwErr *domain.GatewayErr
	if errors.As(err, &gwErr) {
		return gwErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewGatewayErr(domain.GatewayErrKind_Timeout, err)
	}
	return domain.NewGatewayErr(domain.GatewayErrKind_ServiceError, err)
}

// InitGenerationGateway initializes the GenerationGateway.
type InitGenerationGateway struct {
	CacheManager CacheManager     `resolve:""`
	LLMClient    domain.LLMClient `resolve:""`
	Logger       *zerolog.Logger  `resolve:""`
	Model        string           `config:"LLM_MODEL"`
	Timeout      time.Duration    `config:"GENERATION_TIMEOUT" default:"30s"`
}

// Initialize registers the GenerationGateway in the dependency container.
func (i InitGenerationGateway) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerationGateway](NewGenerationGatewayImpl(
		i.CacheManager, i.LLMClient, i.Logger, i.Model, i.Timeout,
	))
	return ctx, nil
}
