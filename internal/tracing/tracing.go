package tracing

import (
	"context"

	"github.com/linecard/autotag/internal/util"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "autotag"

// InitOtel installs the global tracer provider. Spans are exported over OTLP
// gRPC only when an exporter endpoint is configured.
func InitOtel(ctx context.Context) (tp *sdktrace.TracerProvider, shutdown func()) {
	res := resource.NewSchemaless(attribute.String("service.name", ServiceName))

	tp = sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	shutdown = func() {}

	if util.OtelConfigPresent() {
		log.Info().Msg("initializing OpenTelemetry with OTLP exporter")

		exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create OTLP exporter")
		}

		tp = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(exp),
		)

		shutdown = func() {
			_ = tp.ForceFlush(ctx)
			_ = exp.Shutdown(ctx)
			_ = tp.Shutdown(ctx)
		}
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})
	otel.SetTracerProvider(tp)

	return tp, shutdown
}
