package resource

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/codec"
	"github.com/linecard/autotag/pkg/convention/tags"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// TagLoadBalancing tags an ELBv2 load balancer or target group by ARN.
func (s Service) TagLoadBalancing(ctx context.Context, region, arn string, t tags.Set) error {
	var wire []elbtypes.Tag
	for _, p := range codec.ARN.Serialize(t) {
		wire = append(wire, elbtypes.Tag{Key: p.Key, Value: p.Value})
	}

	_, err := s.Client.Elb.AddTags(ctx, &elb.AddTagsInput{
		ResourceArns: []string{arn},
		Tags:         wire,
	}, func(o *elb.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return err
}
