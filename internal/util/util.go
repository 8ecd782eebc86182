package util

import (
	"os"
	"strings"

	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
)

func InLambda() bool {
	_, inLambda := os.LookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	return inLambda
}

func OtelConfigPresent() bool {
	_, present := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	return present
}

// SetLogLevel applies LOG_LEVEL to the global logger, falling back to fallback
// when it is unset or unrecognized.
func SetLogLevel(fallback zerolog.Level) {
	level, exists := os.LookupEnv("LOG_LEVEL")
	if !exists {
		zerolog.SetGlobalLevel(fallback)
		return
	}

	switch strings.ToLower(level) {
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	default:
		zerolog.SetGlobalLevel(fallback)
	}
}

// SdkLogger routes aws-sdk-go-v2 client logging through zerolog.
type SdkLogger struct {
	Log *zerolog.Logger
}

func (l *SdkLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	switch classification {
	case logging.Warn:
		l.Log.Warn().Msgf(format, v...)
	case logging.Debug:
		l.Log.Debug().Msgf(format, v...)
	default:
		l.Log.Error().Msgf(format, v...)
	}
}
