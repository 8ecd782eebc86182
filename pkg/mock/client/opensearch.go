package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/stretchr/testify/mock"
)

type MockOpenSearchClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockOpenSearchClient) AddTags(ctx context.Context, params *opensearch.AddTagsInput, optFns ...func(*opensearch.Options)) (*opensearch.AddTagsOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*opensearch.AddTagsOutput), args.Error(1)
}

func (m *MockOpenSearchClient) record(optFns []func(*opensearch.Options)) {
	var o opensearch.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
