package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/stretchr/testify/mock"
)

type MockEventBridgeClient struct {
	mock.Mock

	// Regions holds the region each call resolved to after its option funcs
	// were applied, in call order.
	Regions []string
}

func (m *MockEventBridgeClient) PutRule(ctx context.Context, params *eventbridge.PutRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutRuleOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*eventbridge.PutRuleOutput), args.Error(1)
}

func (m *MockEventBridgeClient) PutTargets(ctx context.Context, params *eventbridge.PutTargetsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutTargetsOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*eventbridge.PutTargetsOutput), args.Error(1)
}

func (m *MockEventBridgeClient) RemoveTargets(ctx context.Context, params *eventbridge.RemoveTargetsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.RemoveTargetsOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*eventbridge.RemoveTargetsOutput), args.Error(1)
}

func (m *MockEventBridgeClient) DeleteRule(ctx context.Context, params *eventbridge.DeleteRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.DeleteRuleOutput, error) {
	m.record(optFns)
	args := m.Called(ctx, params)
	return args.Get(0).(*eventbridge.DeleteRuleOutput), args.Error(1)
}

func (m *MockEventBridgeClient) record(optFns []func(*eventbridge.Options)) {
	var o eventbridge.Options
	for _, fn := range optFns {
		fn(&o)
	}
	m.Regions = append(m.Regions, o.Region)
}
