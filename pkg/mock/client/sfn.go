package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/stretchr/testify/mock"
)

type MockSfnClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockSfnClient) TagResource(ctx context.Context, params *sfn.TagResourceInput, optFns ...func(*sfn.Options)) (*sfn.TagResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*sfn.TagResourceOutput), args.Error(1)
}

func (m *MockSfnClient) record(optFns []func(*sfn.Options)) {
	var o sfn.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
