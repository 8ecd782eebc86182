package method

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/linecard/autotag/cmd/cli/param"
	"github.com/linecard/autotag/cmd/cli/view"
	"github.com/linecard/autotag/pkg/convention/bus"
	"github.com/linecard/autotag/pkg/convention/dispatch"
	"github.com/linecard/autotag/pkg/convention/extract"
	"github.com/linecard/autotag/pkg/sdk"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog/log"
)

type StsClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func Replay(ctx context.Context, api sdk.API, p *param.Replay) {
	content, err := os.ReadFile(p.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read event")
	}

	event, err := LoadEvent(content, p.Stamp, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load event")
	}

	conventions := api.Conventions
	recorder := &Recorder{}

	if p.DryRun {
		if conventions, err = sdk.InitConventions(ctx, api.Config, recorder, api.Services); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize dry run")
		}
	}

	detail := extract.Of(nil)
	if decoded, err := decodeDetail(event.Detail); err == nil {
		detail = extract.Of(decoded)
	}

	source, _ := detail.Get("eventSource").String()
	name, _ := detail.Get("eventName").String()
	eventTime, _ := detail.Get("eventTime").String()
	key := dispatch.Key{Source: source, Name: name}

	out := view.ReplayView{
		EventId: event.ID,
		Route:   key.String(),
		Age:     view.Since(eventTime),
		DryRun:  p.DryRun,
	}

	if route, ok := conventions.Registry.Route(key); ok {
		out.Resource = route.Resource
	}

	out.Response = conventions.Autotag.Process(ctx, event)
	out.Calls = recorder.Calls

	rendered, err := out.Json()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render replay")
	}

	fmt.Println(rendered)
}

func ListRoutes(ctx context.Context, api sdk.API, p *param.Routes) {
	fmt.Println(view.RouteTable(api.Registry))
}

func PrintPattern(ctx context.Context, api sdk.API, p *param.Pattern) {
	pattern, err := api.Subscription.Pattern()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build event pattern")
	}

	fmt.Println(pattern)
}

func Subscribe(ctx context.Context, api sdk.API, p *param.Subscribe) {
	sub, err := Subscription(ctx, api.Clients.StsClient, api.Config.Account.Region, p.SubscriptionOpts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve tagging function")
	}

	if err := api.Subscription.Subscribe(ctx, sub); err != nil {
		log.Fatal().Err(err).Msg("failed to subscribe")
	}
}

func Unsubscribe(ctx context.Context, api sdk.API, p *param.Unsubscribe) {
	sub, err := Subscription(ctx, api.Clients.StsClient, api.Config.Account.Region, p.SubscriptionOpts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve tagging function")
	}

	if err := api.Subscription.Unsubscribe(ctx, sub); err != nil {
		log.Fatal().Err(err).Msg("failed to unsubscribe")
	}
}

func PrintConfig(ctx context.Context, api sdk.API, p *param.Config) {
	j, err := api.Config.Json()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render configuration")
	}

	fmt.Println(j)
}

// Subscription resolves the function named by opts. A bare name is expanded
// to an ARN in the caller's account and region.
func Subscription(ctx context.Context, stsc StsClient, region string, opts param.SubscriptionOpts) (bus.Subscription, error) {
	sub := bus.Subscription{
		Bus:  opts.Bus,
		Rule: opts.Rule,
	}

	if strings.HasPrefix(opts.Function, "arn:") {
		name, err := bus.FunctionName(opts.Function)
		if err != nil {
			return bus.Subscription{}, err
		}
		sub.FunctionName = name
		sub.FunctionArn = opts.Function
		return sub, nil
	}

	if region == "" {
		return bus.Subscription{}, fmt.Errorf("cannot derive function arn without a region")
	}

	caller, err := stsc.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return bus.Subscription{}, err
	}

	sub.FunctionName = opts.Function
	sub.FunctionArn = fmt.Sprintf("arn:aws:lambda:%s:%s:function:%s", region, *caller.Account, opts.Function)

	return sub, nil
}
