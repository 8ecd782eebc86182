package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/stretchr/testify/mock"
)

type MockEc2Client struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockEc2Client) CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*ec2.CreateTagsOutput), args.Error(1)
}

func (m *MockEc2Client) record(optFns []func(*ec2.Options)) {
	var o ec2.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
