package method

import (
	"context"

	"github.com/linecard/autotag/cmd/cli/view"
	"github.com/linecard/autotag/pkg/convention/tags"
)

// Recorder stands in for the resource service during a dry run. It accepts
// every call and remembers what would have been tagged.
type Recorder struct {
	Calls []view.Call
}

func (r *Recorder) record(method, region string, ids []string, t tags.Set) error {
	r.Calls = append(r.Calls, view.Call{
		Method:    method,
		Region:    region,
		Resources: ids,
		Tags:      tags.Print(t),
	})
	return nil
}

func (r *Recorder) TagInstances(ctx context.Context, region string, ids []string, t tags.Set) error {
	return r.record("TagInstances", region, ids, t)
}

func (r *Recorder) TagBucket(ctx context.Context, region, bucket string, t tags.Set) error {
	return r.record("TagBucket", region, []string{bucket}, t)
}

func (r *Recorder) TagDatabase(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagDatabase", region, []string{arn}, t)
}

func (r *Recorder) TagTable(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagTable", region, []string{arn}, t)
}

func (r *Recorder) TagFunction(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagFunction", region, []string{arn}, t)
}

func (r *Recorder) TagLoadBalancing(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagLoadBalancing", region, []string{arn}, t)
}

func (r *Recorder) TagFileSystem(ctx context.Context, region, id string, t tags.Set) error {
	return r.record("TagFileSystem", region, []string{id}, t)
}

func (r *Recorder) TagTopic(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagTopic", region, []string{arn}, t)
}

func (r *Recorder) TagQueue(ctx context.Context, region, url string, t tags.Set) error {
	return r.record("TagQueue", region, []string{url}, t)
}

func (r *Recorder) TagSecret(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagSecret", region, []string{arn}, t)
}

func (r *Recorder) TagDomain(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagDomain", region, []string{arn}, t)
}

func (r *Recorder) TagCluster(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagCluster", region, []string{arn}, t)
}

func (r *Recorder) TagStateMachine(ctx context.Context, region, arn string, t tags.Set) error {
	return r.record("TagStateMachine", region, []string{arn}, t)
}
