package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/mock"
)

type MockDynamoDBClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockDynamoDBClient) TagResource(ctx context.Context, params *dynamodb.TagResourceInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TagResourceOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*dynamodb.TagResourceOutput), args.Error(1)
}

func (m *MockDynamoDBClient) record(optFns []func(*dynamodb.Options)) {
	var o dynamodb.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
