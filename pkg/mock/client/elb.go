package mocks

import (
	"context"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/stretchr/testify/mock"
)

type MockElbClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockElbClient) AddTags(ctx context.Context, params *elb.AddTagsInput, optFns ...func(*elb.Options)) (*elb.AddTagsOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*elb.AddTagsOutput), args.Error(1)
}

func (m *MockElbClient) record(optFns []func(*elb.Options)) {
	var o elb.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
