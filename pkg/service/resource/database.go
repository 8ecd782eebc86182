package resource

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/codec"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	opensearchtypes "github.com/aws/aws-sdk-go-v2/service/opensearch/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// TagDatabase tags an RDS instance or cluster by ARN.
func (s Service) TagDatabase(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []rdstypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, rdstypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Rds.AddTagsToResource(ctx, &rds.AddTagsToResourceInput{
		ResourceName: &arn,
		Tags:         wire,
	}, func(o *rds.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagTable(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []dynamodbtypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, dynamodbtypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.DynamoDB.TagResource(ctx, &dynamodb.TagResourceInput{
		ResourceArn: &arn,
		Tags:        wire,
	}, func(o *dynamodb.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}

func (s Service) TagDomain(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []opensearchtypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, opensearchtypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.OpenSearch.AddTags(ctx, &opensearch.AddTagsInput{
		ARN:     &arn,
		TagList: wire,
	}, func(o *opensearch.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}
