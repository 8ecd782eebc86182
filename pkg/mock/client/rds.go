package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/stretchr/testify/mock"
)

type MockRdsClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockRdsClient) AddTagsToResource(ctx context.Context, params *rds.AddTagsToResourceInput, optFns ...func(*rds.Options)) (*rds.AddTagsToResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*rds.AddTagsToResourceOutput), args.Error(1)
}

func (m *MockRdsClient) record(optFns []func(*rds.Options)) {
	var o rds.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
