package handler

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/autotag"
	"github.com/linecard/autotag/pkg/convention/config"
	"github.com/linecard/autotag/pkg/sdk"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-lambda-go/otellambda"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var cfg config.Config
var api sdk.API

// Listen for CloudTrail events delivered by EventBridge.
func Listen(tp *sdktrace.TracerProvider) {
	instrumented := otellambda.InstrumentHandler(Handler,
		otellambda.WithTracerProvider(tp),
		otellambda.WithFlusher(tp),
	)

	lambda.Start(instrumented)
}

// Handler tags the resource named by one event. Tagging failures never fail
// the invocation, so EventBridge does not redeliver.
func Handler(ctx context.Context, event events.CloudWatchEvent) (autotag.Response, error) {
	BeforeEach(ctx)
	return api.Autotag.Process(ctx, event), nil
}
