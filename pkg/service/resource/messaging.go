package resource

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/codec"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	secretsmanagertypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func (s Service) TagTopic(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []snstypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, snstypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Sns.TagResource(ctx, &sns.TagResourceInput{
		ResourceArn: &arn,
		Tags:        wire,
	}, func(o *sns.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

// TagQueue tags an SQS queue, which is addressed by URL rather than ARN.
func (s Service) TagQueue(ctx context.Context, region, url string, t tags.Set) error {
	_, err := s.Client.Sqs.TagQueue(ctx, &sqs.TagQueueInput{
		QueueUrl: &url,
		Tags:     codec.Flat(t),
	}, func(o *sqs.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagSecret(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []secretsmanagertypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, secretsmanagertypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.SecretsManager.TagResource(ctx, &secretsmanager.TagResourceInput{
		SecretId: &arn,
		Tags:     wire,
	}, func(o *secretsmanager.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}
