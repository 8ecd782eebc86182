package router

import (
	"context"
	"os"

	"github.com/linecard/autotag/cmd/cli/method"
	"github.com/linecard/autotag/cmd/cli/param"
	"github.com/linecard/autotag/pkg/sdk"

	"github.com/alexflint/go-arg"
)

type Root struct {
	Replay      *param.Replay      `arg:"subcommand:replay" help:"Process a captured event locally"`
	Routes      *param.Routes      `arg:"subcommand:routes" help:"List supported events"`
	Pattern     *param.Pattern     `arg:"subcommand:pattern" help:"Print the EventBridge event pattern"`
	Subscribe   *param.Subscribe   `arg:"subcommand:subscribe" help:"Route CloudTrail events to the tagging function"`
	Unsubscribe *param.Unsubscribe `arg:"subcommand:unsubscribe" help:"Remove the managed rule"`
	Config      *param.Config      `arg:"subcommand:config" help:"Print configuration"`
}

func (c Root) Handle(ctx context.Context, api sdk.API) {
	switch {
	case c.Replay != nil:
		method.Replay(ctx, api, c.Replay)

	case c.Routes != nil:
		method.ListRoutes(ctx, api, c.Routes)

	case c.Pattern != nil:
		method.PrintPattern(ctx, api, c.Pattern)

	case c.Subscribe != nil:
		method.Subscribe(ctx, api, c.Subscribe)

	case c.Unsubscribe != nil:
		method.Unsubscribe(ctx, api, c.Unsubscribe)

	case c.Config != nil:
		method.PrintConfig(ctx, api, c.Config)

	default:
		arg.MustParse(&c).WriteHelp(os.Stdout)

	}
}
