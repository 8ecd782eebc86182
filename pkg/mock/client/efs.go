package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/efs"
	"github.com/stretchr/testify/mock"
)

type MockEfsClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockEfsClient) TagResource(ctx context.Context, params *efs.TagResourceInput, optFns ...func(*efs.Options)) (*efs.TagResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*efs.TagResourceOutput), args.Error(1)
}

func (m *MockEfsClient) record(optFns []func(*efs.Options)) {
	var o efs.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
