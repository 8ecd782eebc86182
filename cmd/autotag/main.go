package main

import (
	"context"

	"github.com/linecard/autotag/cmd/cli"
	"github.com/linecard/autotag/cmd/handler"
	"github.com/linecard/autotag/internal/tracing"
	"github.com/linecard/autotag/internal/util"
	"github.com/rs/zerolog"
)

func main() {
	util.SetLogLevel(zerolog.InfoLevel)

	ctx := context.Background()

	tp, shutdown := tracing.InitOtel(ctx)
	defer shutdown()

	if util.InLambda() {
		handler.Listen(tp)
		return
	}

	cli.Invoke(ctx)
}
