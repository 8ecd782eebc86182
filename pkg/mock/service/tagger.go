package mocks

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/stretchr/testify/mock"
)

type MockTagger struct {
	mock.Mock
}

func (m *MockTagger) TagInstances(ctx context.Context, region string, ids []string, t tags.Set) error {
	args := m.Called(ctx, region, ids, t)
	return args.Error(0)
}

func (m *MockTagger) TagBucket(ctx context.Context, region, bucket string, t tags.Set) error {
	args := m.Called(ctx, region, bucket, t)
	return args.Error(0)
}

func (m *MockTagger) TagDatabase(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagTable(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagFunction(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagLoadBalancing(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagFileSystem(ctx context.Context, region, id string, t tags.Set) error {
	args := m.Called(ctx, region, id, t)
	return args.Error(0)
}

func (m *MockTagger) TagTopic(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagQueue(ctx context.Context, region, url string, t tags.Set) error {
	args := m.Called(ctx, region, url, t)
	return args.Error(0)
}

func (m *MockTagger) TagSecret(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagDomain(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagCluster(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}

func (m *MockTagger) TagStateMachine(ctx context.Context, region, arn string, t tags.Set) error {
	args := m.Called(ctx, region, arn, t)
	return args.Error(0)
}
