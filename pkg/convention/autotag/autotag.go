package autotag

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/linecard/autotag/pkg/convention/config"
	"github.com/linecard/autotag/pkg/convention/dispatch"
	"github.com/linecard/autotag/pkg/convention/extract"
	"github.com/linecard/autotag/pkg/convention/guard"
	"github.com/linecard/autotag/pkg/convention/identity"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	StatusProcessed = "Event processed"
	StatusNoHandler = "No handler for event"
	StatusNoId      = "No resource identifier"
)

// Response is returned to the invoker for every event.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Failure is the body of a response for an event the dispatcher itself
// could not process.
type Failure struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	EventName string `json:"eventName"`
}

type Router interface {
	Lookup(k dispatch.Key) (guard.Guarded, bool)
}

type Convention struct {
	Config config.Config
	Router Router
}

func FromRouter(c config.Config, r Router) Convention {
	return Convention{
		Config: c,
		Router: r,
	}
}

// Process tags the resource created by one CloudTrail event. Handler
// failures are logged and absorbed; only defects in decoding or dispatch
// produce a failure response.
func (c Convention) Process(ctx context.Context, event events.CloudWatchEvent) (response Response) {
	ctx, span := otel.Tracer("").Start(ctx, "dispatch")
	defer span.End()

	var detail map[string]any

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			span.SetStatus(codes.Error, err.Error())
			log.Error().Err(err).Msg("unexpected error processing event")
			response = failure("Panic", err, detail)
		}
	}()

	if len(event.Detail) > 0 {
		if err := json.Unmarshal(event.Detail, &detail); err != nil {
			span.SetStatus(codes.Error, err.Error())
			log.Error().Err(err).Str("id", event.ID).Msg("unexpected error processing event")
			return failure("MalformedEvent", err, nil)
		}
	}

	d := extract.Of(detail)
	source, _ := d.Get("eventSource").String()
	name, _ := d.Get("eventName").String()
	eventTime, _ := d.Get("eventTime").String()

	span.SetAttributes(
		attribute.String("autotag.event.source", source),
		attribute.String("autotag.event.name", name),
	)

	log.Info().Str("source", source).Str("event", name).Msg("processing event")

	principal := detail["userIdentity"]
	t := tags.Build(
		identity.ExtractOwner(principal),
		identity.CreatorArn(principal),
		eventTime,
		c.Config.Tagging.Environment,
		c.Config.Tagging.Project,
	)

	log.Info().Str("tags", tags.Print(t)).Msg("tags to apply")

	handle, ok := c.Router.Lookup(dispatch.Key{Source: source, Name: name})
	if !ok {
		log.Warn().Str("source", source).Str("event", name).Msg("no handler for event")
		return Response{StatusCode: http.StatusOK, Body: StatusNoHandler}
	}

	outcome := handle(ctx, detail, t)
	span.SetAttributes(attribute.String("autotag.outcome", outcome.String()))

	if outcome == guard.IdentifierMissing {
		return Response{StatusCode: http.StatusOK, Body: StatusNoId}
	}

	return Response{StatusCode: http.StatusOK, Body: StatusProcessed}
}

func failure(kind string, err error, detail map[string]any) Response {
	name, _ := extract.Of(detail).Get("eventName").String()

	body, _ := json.Marshal(Failure{
		Error:     kind,
		Message:   err.Error(),
		EventName: name,
	})

	return Response{StatusCode: http.StatusInternalServerError, Body: string(body)}
}
