package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/stretchr/testify/mock"
)

type MockEcsClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockEcsClient) TagResource(ctx context.Context, params *ecs.TagResourceInput, optFns ...func(*ecs.Options)) (*ecs.TagResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*ecs.TagResourceOutput), args.Error(1)
}

func (m *MockEcsClient) record(optFns []func(*ecs.Options)) {
	var o ecs.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
