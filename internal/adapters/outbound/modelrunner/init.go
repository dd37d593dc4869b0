package modelrunner

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// InitModelRunner registers the domain.SemanticEncoder and domain.LLMClient backed by the model runner.
// Embeddings use the shared retrying client; generation uses a plain instrumented client
// because the generation gateway owns the retry policy.
type InitModelRunner struct {
	HttpClient    *http.Client    `resolve:""`
	Logger        *zerolog.Logger `resolve:""`
	ModelHost     string          `config:"LLM_MODEL_HOST"`
	APIKey        string          `config:"LLM_API_KEY" default:"-"`
	RatePerMinute int             `config:"GENERATION_RATE_PER_MINUTE" default:"15"`
}

// Initialize registers the adapters in the dependency container.
func (i InitModelRunner) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}

	generationClient := &http.Client{
		Transport: otelhttp.NewTransport(
			http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(telemetry.SpanNameFormatter),
		),
	}

	depend.Register[domain.SemanticEncoder](NewSemanticEncoderAdapter(
		NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient),
	))
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewDRMAPIClient(i.ModelHost, apiKey, generationClient),
		i.RatePerMinute,
		i.Logger,
	))
	return ctx, nil
}
