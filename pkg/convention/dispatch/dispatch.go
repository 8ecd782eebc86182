package dispatch

import (
	"context"
	"sort"

	"github.com/linecard/autotag/pkg/convention/extract"
	"github.com/linecard/autotag/pkg/convention/guard"
	"github.com/linecard/autotag/pkg/convention/retry"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/rs/zerolog/log"
)

// Key identifies a CloudTrail API call.
type Key struct {
	Source string
	Name   string
}

func (k Key) String() string {
	return k.Source + "/" + k.Name
}

// Tagger is the provider surface the routes tag through.
type Tagger interface {
	TagInstances(ctx context.Context, region string, ids []string, t tags.Set) error
	TagBucket(ctx context.Context, region, bucket string, t tags.Set) error
	TagDatabase(ctx context.Context, region, arn string, t tags.Set) error
	TagTable(ctx context.Context, region, arn string, t tags.Set) error
	TagFunction(ctx context.Context, region, arn string, t tags.Set) error
	TagLoadBalancing(ctx context.Context, region, arn string, t tags.Set) error
	TagFileSystem(ctx context.Context, region, id string, t tags.Set) error
	TagTopic(ctx context.Context, region, arn string, t tags.Set) error
	TagQueue(ctx context.Context, region, url string, t tags.Set) error
	TagSecret(ctx context.Context, region, arn string, t tags.Set) error
	TagDomain(ctx context.Context, region, arn string, t tags.Set) error
	TagCluster(ctx context.Context, region, arn string, t tags.Set) error
	TagStateMachine(ctx context.Context, region, arn string, t tags.Set) error
}

type tagFunc func(ctx context.Context, region string, ids []string, t tags.Set) error

// Route binds an event to the extractor that finds its resource and the
// provider call that tags it.
type Route struct {
	Key      Key
	Resource string
	Extract  extract.Extractor
	tag      tagFunc
}

func (r Route) handler(policy retry.Policy) guard.Handler {
	return func(ctx context.Context, detail map[string]any, t tags.Set) error {
		ids := r.Extract(detail)
		if len(ids) == 0 {
			return guard.ErrIdentifierMissing
		}

		region, _ := extract.Of(detail).Get("awsRegion").String()

		if err := policy.Do(ctx, func(ctx context.Context) error {
			return r.tag(ctx, region, ids, t)
		}); err != nil {
			return err
		}

		log.Info().
			Str("event", r.Key.Name).
			Str("region", region).
			Strs("resources", ids).
			Msgf("tagged %s", r.Resource)

		return nil
	}
}

type entry struct {
	route  Route
	handle guard.Guarded
}

// Registry is the read-only routing table. Build it once with NewRegistry
// and share it freely.
type Registry struct {
	entries map[Key]entry
	keys    []Key
}

func NewRegistry(t Tagger, policy retry.Policy) Registry {
	r := Registry{entries: map[Key]entry{}}

	for _, route := range Routes(t) {
		r.entries[route.Key] = entry{
			route:  route,
			handle: guard.Wrap(route.Key.Name, route.handler(policy)),
		}
		r.keys = append(r.keys, route.Key)
	}

	sort.Slice(r.keys, func(i, j int) bool {
		if r.keys[i].Source != r.keys[j].Source {
			return r.keys[i].Source < r.keys[j].Source
		}
		return r.keys[i].Name < r.keys[j].Name
	})

	return r
}

// Lookup returns the guarded handler registered for k.
func (r Registry) Lookup(k Key) (guard.Guarded, bool) {
	e, ok := r.entries[k]
	return e.handle, ok
}

func (r Registry) Route(k Key) (Route, bool) {
	e, ok := r.entries[k]
	return e.route, ok
}

// Keys returns every registered key, sorted by source then name.
func (r Registry) Keys() []Key {
	return append([]Key(nil), r.keys...)
}

func (r Registry) Len() int {
	return len(r.entries)
}
