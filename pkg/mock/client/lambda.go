package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/mock"
)

type MockLambdaClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockLambdaClient) TagResource(ctx context.Context, params *lambda.TagResourceInput, optFns ...func(*lambda.Options)) (*lambda.TagResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.TagResourceOutput), args.Error(1)
}

func (m *MockLambdaClient) AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.AddPermissionOutput), args.Error(1)
}

func (m *MockLambdaClient) RemovePermission(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.RemovePermissionOutput), args.Error(1)
}

func (m *MockLambdaClient) record(optFns []func(*lambda.Options)) {
	var o lambda.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
