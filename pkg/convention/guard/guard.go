package guard

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

// ErrIdentifierMissing is returned by handlers when the event carries no
// resource identifier. It is a terminal, non-error outcome.
var ErrIdentifierMissing = errors.New("no resource identifier found in event")

var permissionCodes = map[string]bool{
	"AccessDeniedException": true,
	"UnauthorizedAccess":    true,
	"AccessDenied":          true,
	"UnauthorizedOperation": true,
	"AuthorizationError":    true,
}

type Outcome int

const (
	Success Outcome = iota
	IdentifierMissing
	PermissionDenied
	ProviderError
	Unexpected
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case IdentifierMissing:
		return "IdentifierMissing"
	case PermissionDenied:
		return "PermissionDenied"
	case ProviderError:
		return "ProviderError"
	default:
		return "Unexpected"
	}
}

// Handler tags the resource(s) described by one event detail.
type Handler func(ctx context.Context, detail map[string]any, t tags.Set) error

// Guarded is a Handler whose failures have already been logged and absorbed.
type Guarded func(ctx context.Context, detail map[string]any, t tags.Set) Outcome

func Classify(err error) Outcome {
	var apiErr smithy.APIError

	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrIdentifierMissing):
		return IdentifierMissing
	case errors.As(err, &apiErr) && permissionCodes[apiErr.ErrorCode()]:
		return PermissionDenied
	case errors.As(err, &apiErr):
		return ProviderError
	default:
		return Unexpected
	}
}

// Wrap absorbs every failure of h, panics included, logging each according
// to its class. The returned handler never fails.
func Wrap(eventName string, h Handler) Guarded {
	return func(ctx context.Context, detail map[string]any, t tags.Set) (outcome Outcome) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("event", eventName).
					Str("panic", fmt.Sprint(r)).
					Str("stack", string(debug.Stack())).
					Msg("unexpected error in handler")
				outcome = Unexpected
			}
		}()

		err := h(ctx, detail, t)
		outcome = Classify(err)

		var apiErr smithy.APIError
		errors.As(err, &apiErr)

		switch outcome {
		case IdentifierMissing:
			log.Warn().Str("event", eventName).Msg("no resource identifier found")

		case PermissionDenied:
			log.Error().
				Str("event", eventName).
				Str("code", apiErr.ErrorCode()).
				Str("message", apiErr.ErrorMessage()).
				Msg("insufficient permissions to tag resource")

		case ProviderError:
			log.Error().
				Str("event", eventName).
				Str("code", apiErr.ErrorCode()).
				Str("message", apiErr.ErrorMessage()).
				Msg("error tagging resource")

		case Unexpected:
			log.Error().
				Err(err).
				Str("event", eventName).
				Str("type", fmt.Sprintf("%T", err)).
				Msg("unexpected error in handler")
		}

		return outcome
	}
}
