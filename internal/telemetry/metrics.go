package telemetry

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// Histogram buckets, in seconds. Ranking runs in milliseconds while a generation
// round trip can take the whole timeout.
var (
	rankingBuckets    = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25}
	generationBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60}
)

// WithHttpMetricAttributes labels HTTP metrics with the route pattern and method.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.HTTPRoute(getHttpRoute(r)),
		semconv.HTTPRequestMethodKey.String(r.Method),
	}
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(5*time.Second),
		)),
		sdkmetric.WithView(
			histogramView("recommendation_duration_seconds", rankingBuckets),
			histogramView("generation_duration_seconds", generationBuckets),
			histogramView("http.server.request.duration", generationBuckets),
		),
	)
	return meterProvider, exporter, nil
}

func histogramView(instrument string, boundaries []float64) sdkmetric.View {
	return sdkmetric.NewView(
		sdkmetric.Instrument{Name: instrument},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: boundaries},
		},
	)
}
