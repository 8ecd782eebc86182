package handler

import (
	"context"
	"sync"

	"github.com/linecard/autotag/internal/util"
	"github.com/linecard/autotag/pkg/convention/config"
	"github.com/linecard/autotag/pkg/sdk"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// BeforeEach builds configuration and clients on the first invocation of a
// container. Warm invocations reuse them.
func BeforeEach(ctx context.Context) {
	once.Do(func() {
		var err error

		awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
			awsconfig.WithLogger(&util.SdkLogger{Log: &log.Logger}),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load AWS configuration")
		}

		if cfg, err = config.FromEnv(awsConfig); err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration from environment")
		}

		if api, err = sdk.Init(ctx, awsConfig, cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize SDK")
		}
	})
}
