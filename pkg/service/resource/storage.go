package resource

import (
	"context"
	"errors"

	"github.com/linecard/autotag/pkg/convention/codec"
	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-sdk-go-v2/service/efs"
	efstypes "github.com/aws/aws-sdk-go-v2/service/efs/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

// TagBucket merges t over whatever tags the bucket already carries.
// PutBucketTagging replaces the whole tag set, so the existing tags are
// read first. Only a bucket without a tag set counts as no existing tags;
// any other read failure is returned before anything is written.
func (s Service) TagBucket(ctx context.Context, region, bucket string, t tags.Set) error {
	inRegion := func(o *s3.Options) {
		if region != "" {
			o.Region = region
		}
	}

	existing, err := s.BucketTags(ctx, region, bucket)
	if err != nil {
		var apiErr smithy.APIError
		if !errors.As(err, &apiErr) || apiErr.ErrorCode() != "NoSuchTagSet" {
			return err
		}
		log.Debug().
			Str("bucket", bucket).
			Str("code", apiErr.ErrorCode()).
			Msg("no existing bucket tags")
		existing = tags.Set{}
	}

	merged := tags.Merge(existing, t)

	_, err = s.Client.S3.PutBucketTagging(ctx, &s3.PutBucketTaggingInput{
		Bucket: &bucket,
		Tagging: &s3types.Tagging{
			TagSet: codec.S3.Serialize(merged),
		},
	}, inRegion)
	return err
}

// BucketTags reads the tags currently set on a bucket.
func (s Service) BucketTags(ctx context.Context, region, bucket string) (tags.Set, error) {
	out, err := s.Client.S3.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{
		Bucket: &bucket,
	}, func(o *s3.Options) {
		if region != "" {
			o.Region = region
		}
	})
	if err != nil {
		return tags.Set{}, err
	}
	return codec.S3.Deserialize(out.TagSet)
}

func (s Service) TagFileSystem(ctx context.Context, region, id string, t tags.Set) error {
	var wire []efstypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, efstypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Efs.TagResource(ctx, &efs.TagResourceInput{
		ResourceId: &id,
		Tags:       wire,
	}, func(o *efs.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}
