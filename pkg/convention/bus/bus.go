package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/linecard/autotag/pkg/convention/dispatch"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBus  = "default"
	DefaultRule = "autotag"
	DetailType  = "AWS API Call via CloudTrail"
)

type EventService interface {
	Put(ctx context.Context, bus, rule, pattern, function, arn string) error
	Delete(ctx context.Context, bus, rule, function string) error
}

type KeySource interface {
	Keys() []dispatch.Key
}

// Subscription names the rule that delivers CloudTrail events to a function.
type Subscription struct {
	Bus          string
	Rule         string
	FunctionArn  string
	FunctionName string
}

type Services struct {
	Event EventService
}

type Convention struct {
	Routes  KeySource
	Service Services
}

func FromServices(r KeySource, e EventService) Convention {
	return Convention{
		Routes: r,
		Service: Services{
			Event: e,
		},
	}
}

type detailPattern struct {
	EventSource []string `json:"eventSource"`
	EventName   []string `json:"eventName"`
}

type eventPattern struct {
	Source     []string      `json:"source"`
	DetailType []string      `json:"detail-type"`
	Detail     detailPattern `json:"detail"`
}

// Pattern renders the EventBridge event pattern matching every key.
func Pattern(keys []dispatch.Key) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("cannot build event pattern without routes")
	}

	var sources, services, names []string
	for _, k := range keys {
		sources = append(sources, k.Source)
		services = append(services, "aws."+strings.TrimSuffix(k.Source, ".amazonaws.com"))
		names = append(names, k.Name)
	}

	content, err := json.Marshal(eventPattern{
		Source:     unique(services),
		DetailType: []string{DetailType},
		Detail: detailPattern{
			EventSource: unique(sources),
			EventName:   unique(names),
		},
	})
	if err != nil {
		return "", err
	}

	return string(content), nil
}

func (c Convention) Pattern() (string, error) {
	return Pattern(c.Routes.Keys())
}

func (c Convention) Subscribe(ctx context.Context, s Subscription) error {
	ctx, span := otel.Tracer("").Start(ctx, "bus.subscribe")
	defer span.End()

	span.SetAttributes(
		attribute.String("autotag.bus", s.Bus),
		attribute.String("autotag.rule", s.Rule),
	)

	pattern, err := c.Pattern()
	if err != nil {
		return err
	}

	if err := c.Service.Event.Put(ctx, s.Bus, s.Rule, pattern, s.FunctionName, s.FunctionArn); err != nil {
		return fmt.Errorf("failed to put rule %s on bus %s: %w", s.Rule, s.Bus, err)
	}

	log.Info().
		Str("bus", s.Bus).
		Str("rule", s.Rule).
		Str("function", s.FunctionName).
		Msg("subscribed")

	return nil
}

func (c Convention) Unsubscribe(ctx context.Context, s Subscription) error {
	ctx, span := otel.Tracer("").Start(ctx, "bus.unsubscribe")
	defer span.End()

	if err := c.Service.Event.Delete(ctx, s.Bus, s.Rule, s.FunctionName); err != nil {
		return fmt.Errorf("failed to delete rule %s on bus %s: %w", s.Rule, s.Bus, err)
	}

	log.Info().
		Str("bus", s.Bus).
		Str("rule", s.Rule).
		Str("function", s.FunctionName).
		Msg("unsubscribed")

	return nil
}

// FunctionName returns the name segment of a Lambda function ARN.
func FunctionName(arn string) (string, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 7 || parts[2] != "lambda" || parts[5] != "function" || parts[6] == "" {
		return "", fmt.Errorf("not a lambda function arn: %s", arn)
	}
	return parts[6], nil
}

func unique(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
