package resource

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/codec"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	sfntypes "github.com/aws/aws-sdk-go-v2/service/sfn/types"
)

// TagInstances tags any EC2 resource ids in a single CreateTags call.
func (s Service) TagInstances(ctx context.Context, region string, ids []string, t tags.Set) error {
	_, err := s.Client.Ec2.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: ids,
		Tags:      codec.EC2.Serialize(t),
	}, func(o *ec2.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagFunction(ctx context.Context, region, arn string, t tags.Set) error {
	_, err := s.Client.Lambda.TagResource(ctx, &lambda.TagResourceInput{
		Resource: &arn,
		Tags:     codec.Flat(t),
	}, func(o *lambda.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagCluster(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []ecstypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, ecstypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Ecs.TagResource(ctx, &ecs.TagResourceInput{
		ResourceArn: &arn,
		Tags:        wire,
	}, func(o *ecs.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagStateMachine(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []sfntypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, sfntypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Sfn.TagResource(ctx, &sfn.TagResourceInput{
		ResourceArn: &arn,
		Tags:        wire,
	}, func(o *sfn.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}
