package cli

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/linecard/autotag/cmd/cli/router"
	"github.com/linecard/autotag/internal/util"
	"github.com/linecard/autotag/pkg/convention/config"
	"github.com/linecard/autotag/pkg/sdk"
	"go.opentelemetry.io/otel"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Invoke(ctx context.Context) {
	var err error
	var cfg config.Config
	var api sdk.API

	ctx, span := otel.Tracer("").Start(ctx, "cli")
	defer span.End()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	var root router.Root
	arg.MustParse(&root)

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
		awsconfig.WithLogger(&util.SdkLogger{Log: &log.Logger}),
		awsconfig.WithClientLogMode(aws.LogRetries))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	if cfg, err = config.FromEnv(awsConfig); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration from environment")
	}

	if api, err = sdk.Init(ctx, awsConfig, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SDK")
	}

	root.Handle(ctx, api)
}
