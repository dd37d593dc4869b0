package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	breakerName             = "model-runner-chat"
	breakerTripFailures     = 5
	breakerOpenTimeout      = 30 * time.Second
	breakerHalfOpenRequests = 1
)

// LLMClient adapts DRMAPIClient to domain.LLMClient. Calls go through a local
// rate limiter and a circuit breaker, and every failure is a *domain.GatewayErr.
type LLMClient struct {
	client  DRMAPIClient
	breaker *gobreaker.CircuitBreaker[*ChatResponse]
	limiter *rate.Limiter
}

// NewLLMClientAdapter creates a new adapter allowing ratePerMinute calls.
// A non-positive rate disables the limiter.
func NewLLMClientAdapter(client DRMAPIClient, ratePerMinute int, logger *zerolog.Logger) LLMClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if ratePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute)
	}

	breaker := gobreaker.NewCircuitBreaker[*ChatResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerHalfOpenRequests,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			}
		},
	})

	return LLMClient{client: client, breaker: breaker, limiter: limiter}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := a.limiter.Wait(spanCtx); err != nil {
		gwErr := domain.NewGatewayErr(domain.GatewayErrKind_QuotaExceeded, err)
		telemetry.RecordErrorAndStatus(span, gwErr)
		return domain.LLMChatResponse{}, gwErr
	}

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.breaker.Execute(func() (*ChatResponse, error) {
		return a.client.Chat(spanCtx, adapterReq)
	})
	if err != nil {
		gwErr := toGatewayErr(err)
		telemetry.RecordErrorAndStatus(span, gwErr)
		return domain.LLMChatResponse{}, gwErr
	}

	if len(resp.Choices) == 0 {
		gwErr := domain.NewGatewayErr(domain.GatewayErrKind_ServiceError, errors.New("no choices in response"))
		telemetry.RecordErrorAndStatus(span, gwErr)
		return domain.LLMChatResponse{}, gwErr
	}

	return domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage:   usageOf(resp),
	}, nil
}

// usageOf reads the token usage, falling back to llama.cpp timings.
func usageOf(resp *ChatResponse) domain.LLMUsage {
	switch {
	case resp.Usage != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	case resp.Timings != nil:
		return domain.LLMUsage{
			PromptTokens:     resp.Timings.PromptN,
			CompletionTokens: resp.Timings.PredictedN,
			TotalTokens:      resp.Timings.PromptN + resp.Timings.PredictedN,
		}
	default:
		return domain.LLMUsage{}
	}
}

// toGatewayErr classifies transport failures: 429 is a quota problem, deadlines are
// timeouts and everything else, an open breaker included, is a service error.
func toGatewayErr(err error) *domain.GatewayErr {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests:
		return domain.NewGatewayErr(domain.GatewayErrKind_QuotaExceeded, err)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewGatewayErr(domain.GatewayErrKind_Timeout, err)
	default:
		return domain.NewGatewayErr(domain.GatewayErrKind_ServiceError, err)
	}
}
