package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/mock"
)

type MockSqsClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockSqsClient) TagQueue(ctx context.Context, params *sqs.TagQueueInput, optFns ...func(*sqs.Options)) (*sqs.TagQueueOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*sqs.TagQueueOutput), args.Error(1)
}

func (m *MockSqsClient) record(optFns []func(*sqs.Options)) {
	var o sqs.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
