package resource

import (
	"context"
	"testing"
	"time"

	"github.com/linecard/autotag/pkg/convention/retry"
	"github.com/linecard/autotag/pkg/convention/tags"
	clientmock "github.com/linecard/autotag/pkg/mock/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/aws-sdk-go-v2/service/efs"
	efstypes "github.com/aws/aws-sdk-go-v2/service/efs/types"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	opensearchtypes "github.com/aws/aws-sdk-go-v2/service/opensearch/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	secretsmanagertypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	sfntypes "github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClients struct {
	ec2            *clientmock.MockEc2Client
	s3             *clientmock.MockS3Client
	rds            *clientmock.MockRdsClient
	dynamodb       *clientmock.MockDynamoDBClient
	lambda         *clientmock.MockLambdaClient
	elb            *clientmock.MockElbClient
	efs            *clientmock.MockEfsClient
	sns            *clientmock.MockSnsClient
	sqs            *clientmock.MockSqsClient
	secretsmanager *clientmock.MockSecretsManagerClient
	opensearch     *clientmock.MockOpenSearchClient
	ecs            *clientmock.MockEcsClient
	sfn            *clientmock.MockSfnClient
}

func newService() (*mockClients, Service) {
	m := &mockClients{
		ec2:            &clientmock.MockEc2Client{},
		s3:             &clientmock.MockS3Client{},
		rds:            &clientmock.MockRdsClient{},
		dynamodb:       &clientmock.MockDynamoDBClient{},
		lambda:         &clientmock.MockLambdaClient{},
		elb:            &clientmock.MockElbClient{},
		efs:            &clientmock.MockEfsClient{},
		sns:            &clientmock.MockSnsClient{},
		sqs:            &clientmock.MockSqsClient{},
		secretsmanager: &clientmock.MockSecretsManagerClient{},
		opensearch:     &clientmock.MockOpenSearchClient{},
		ecs:            &clientmock.MockEcsClient{},
		sfn:            &clientmock.MockSfnClient{},
	}

	return m, FromClients(Client{
		Ec2:            m.ec2,
		S3:             m.s3,
		Rds:            m.rds,
		DynamoDB:       m.dynamodb,
		Lambda:         m.lambda,
		Elb:            m.elb,
		Efs:            m.efs,
		Sns:            m.sns,
		Sqs:            m.sqs,
		SecretsManager: m.secretsmanager,
		OpenSearch:     m.opensearch,
		Ecs:            m.ecs,
		Sfn:            m.sfn,
	})
}

func TestService(t *testing.T) {
	ctx := context.Background()
	owner := tags.FromPairs("Owner", "alice")

	tests := []struct {
		name  string
		setup func(*mockClients)
		test  func(*testing.T, Service, *mockClients)
	}{
		{
			name: "TagInstances tags every id in one call",
			setup: func(m *mockClients) {
				m.ec2.On("CreateTags", ctx, &ec2.CreateTagsInput{
					Resources: []string{"i-1", "vol-1"},
					Tags:      []ec2types.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&ec2.CreateTagsOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagInstances(ctx, "eu-west-1", []string{"i-1", "vol-1"}, owner))
				m.ec2.AssertNumberOfCalls(t, "CreateTags", 1)
			},
		},
		{
			name: "TagInstances returns provider errors",
			setup: func(m *mockClients) {
				m.ec2.On("CreateTags", ctx, mock.Anything).Return((*ec2.CreateTagsOutput)(nil), &smithy.GenericAPIError{Code: "UnauthorizedOperation"})
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				err := s.TagInstances(ctx, "", []string{"vpc-1"}, owner)
				assert.Error(t, err)
				assert.IsType(t, &smithy.GenericAPIError{}, err)
			},
		},
		{
			name: "TagDatabase",
			setup: func(m *mockClients) {
				m.rds.On("AddTagsToResource", ctx, &rds.AddTagsToResourceInput{
					ResourceName: aws.String("arn:aws:rds:db:1"),
					Tags:         []rdstypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&rds.AddTagsToResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagDatabase(ctx, "", "arn:aws:rds:db:1", owner))
			},
		},
		{
			name: "TagTable",
			setup: func(m *mockClients) {
				m.dynamodb.On("TagResource", ctx, &dynamodb.TagResourceInput{
					ResourceArn: aws.String("arn:aws:dynamodb:table/t"),
					Tags:        []dynamodbtypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&dynamodb.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagTable(ctx, "", "arn:aws:dynamodb:table/t", owner))
			},
		},
		{
			name: "TagFunction sends a flat map",
			setup: func(m *mockClients) {
				m.lambda.On("TagResource", ctx, &lambda.TagResourceInput{
					Resource: aws.String("arn:aws:lambda:function:f"),
					Tags:     map[string]string{"Owner": "alice"},
				}).Return(&lambda.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagFunction(ctx, "", "arn:aws:lambda:function:f", owner))
			},
		},
		{
			name: "TagLoadBalancing",
			setup: func(m *mockClients) {
				m.elb.On("AddTags", ctx, &elb.AddTagsInput{
					ResourceArns: []string{"arn:aws:elasticloadbalancing:lb/1"},
					Tags:         []elbtypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&elb.AddTagsOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagLoadBalancing(ctx, "", "arn:aws:elasticloadbalancing:lb/1", owner))
			},
		},
		{
			name: "TagFileSystem",
			setup: func(m *mockClients) {
				m.efs.On("TagResource", ctx, &efs.TagResourceInput{
					ResourceId: aws.String("fs-1"),
					Tags:       []efstypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&efs.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagFileSystem(ctx, "", "fs-1", owner))
			},
		},
		{
			name: "TagTopic",
			setup: func(m *mockClients) {
				m.sns.On("TagResource", ctx, &sns.TagResourceInput{
					ResourceArn: aws.String("arn:aws:sns:topic"),
					Tags:        []snstypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&sns.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagTopic(ctx, "", "arn:aws:sns:topic", owner))
			},
		},
		{
			name: "TagQueue sends a flat map keyed by url",
			setup: func(m *mockClients) {
				m.sqs.On("TagQueue", ctx, &sqs.TagQueueInput{
					QueueUrl: aws.String("https://sqs.us-east-1.amazonaws.com/123/q"),
					Tags:     map[string]string{"Owner": "alice"},
				}).Return(&sqs.TagQueueOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagQueue(ctx, "", "https://sqs.us-east-1.amazonaws.com/123/q", owner))
			},
		},
		{
			name: "TagSecret",
			setup: func(m *mockClients) {
				m.secretsmanager.On("TagResource", ctx, &secretsmanager.TagResourceInput{
					SecretId: aws.String("arn:aws:secretsmanager:secret:s"),
					Tags:     []secretsmanagertypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&secretsmanager.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagSecret(ctx, "", "arn:aws:secretsmanager:secret:s", owner))
			},
		},
		{
			name: "TagDomain",
			setup: func(m *mockClients) {
				m.opensearch.On("AddTags", ctx, &opensearch.AddTagsInput{
					ARN:     aws.String("arn:aws:es:domain/d"),
					TagList: []opensearchtypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&opensearch.AddTagsOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagDomain(ctx, "", "arn:aws:es:domain/d", owner))
			},
		},
		{
			name: "TagCluster",
			setup: func(m *mockClients) {
				m.ecs.On("TagResource", ctx, &ecs.TagResourceInput{
					ResourceArn: aws.String("arn:aws:ecs:cluster/c"),
					Tags:        []ecstypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&ecs.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagCluster(ctx, "", "arn:aws:ecs:cluster/c", owner))
			},
		},
		{
			name: "TagStateMachine",
			setup: func(m *mockClients) {
				m.sfn.On("TagResource", ctx, &sfn.TagResourceInput{
					ResourceArn: aws.String("arn:aws:states:stateMachine:m"),
					Tags:        []sfntypes.Tag{{Key: aws.String("Owner"), Value: aws.String("alice")}},
				}).Return(&sfn.TagResourceOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagStateMachine(ctx, "", "arn:aws:states:stateMachine:m", owner))
			},
		},
		{
			name: "TagBucket merges over existing tags",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, &s3.GetBucketTaggingInput{Bucket: aws.String("b")}).Return(&s3.GetBucketTaggingOutput{
					TagSet: []s3types.Tag{{Key: aws.String("Team"), Value: aws.String("x")}},
				}, nil)
				m.s3.On("PutBucketTagging", ctx, &s3.PutBucketTaggingInput{
					Bucket: aws.String("b"),
					Tagging: &s3types.Tagging{TagSet: []s3types.Tag{
						{Key: aws.String("Team"), Value: aws.String("x")},
						{Key: aws.String("Owner"), Value: aws.String("bob")},
					}},
				}).Return(&s3.PutBucketTaggingOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagBucket(ctx, "", "b", tags.FromPairs("Owner", "bob")))
				m.s3.AssertExpectations(t)
			},
		},
		{
			name: "TagBucket new values win on collision",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).Return(&s3.GetBucketTaggingOutput{
					TagSet: []s3types.Tag{{Key: aws.String("Owner"), Value: aws.String("old")}},
				}, nil)
				m.s3.On("PutBucketTagging", ctx, &s3.PutBucketTaggingInput{
					Bucket:  aws.String("b"),
					Tagging: &s3types.Tagging{TagSet: []s3types.Tag{{Key: aws.String("Owner"), Value: aws.String("bob")}}},
				}).Return(&s3.PutBucketTaggingOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagBucket(ctx, "", "b", tags.FromPairs("Owner", "bob")))
				m.s3.AssertExpectations(t)
			},
		},
		{
			name: "TagBucket treats missing tag set as empty",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).Return((*s3.GetBucketTaggingOutput)(nil), &smithy.GenericAPIError{Code: "NoSuchTagSet"})
				m.s3.On("PutBucketTagging", ctx, &s3.PutBucketTaggingInput{
					Bucket:  aws.String("b"),
					Tagging: &s3types.Tagging{TagSet: []s3types.Tag{{Key: aws.String("Owner"), Value: aws.String("bob")}}},
				}).Return(&s3.PutBucketTaggingOutput{}, nil)
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.NoError(t, s.TagBucket(ctx, "", "b", tags.FromPairs("Owner", "bob")))
				m.s3.AssertExpectations(t)
			},
		},
		{
			name: "TagBucket returns write errors",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).Return(&s3.GetBucketTaggingOutput{}, nil)
				m.s3.On("PutBucketTagging", ctx, mock.Anything).Return((*s3.PutBucketTaggingOutput)(nil), &smithy.GenericAPIError{Code: "AccessDenied"})
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				assert.Error(t, s.TagBucket(ctx, "", "b", owner))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newService()

			if tc.setup != nil {
				tc.setup(m)
			}

			tc.test(t, s, m)
		})
	}
}

func TestTagBucketReadFailures(t *testing.T) {
	ctx := context.Background()
	bob := tags.FromPairs("Owner", "bob")
	policy := retry.Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Sleep:      func(context.Context, time.Duration) error { return nil },
	}

	tests := []struct {
		name  string
		setup func(*mockClients)
		test  func(*testing.T, Service, *mockClients)
	}{
		{
			name: "denied read never writes",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).
					Return((*s3.GetBucketTaggingOutput)(nil), &smithy.GenericAPIError{Code: "AccessDenied"})
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				err := s.TagBucket(ctx, "", "b", bob)
				require.Error(t, err)
				assert.Equal(t, "AccessDenied", err.(*smithy.GenericAPIError).Code)
				m.s3.AssertNotCalled(t, "PutBucketTagging", mock.Anything, mock.Anything)
			},
		},
		{
			name: "throttled read is returned for retry without writing",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).
					Return((*s3.GetBucketTaggingOutput)(nil), &smithy.GenericAPIError{Code: "ThrottlingException"})
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				err := s.TagBucket(ctx, "", "b", bob)
				assert.True(t, retry.IsThrottle(err))
				m.s3.AssertNotCalled(t, "PutBucketTagging", mock.Anything, mock.Anything)
			},
		},
		{
			name: "throttled read succeeds on retry and keeps existing tags",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).
					Return((*s3.GetBucketTaggingOutput)(nil), &smithy.GenericAPIError{Code: "ThrottlingException"}).Once()
				m.s3.On("GetBucketTagging", ctx, mock.Anything).
					Return(&s3.GetBucketTaggingOutput{
						TagSet: []s3types.Tag{{Key: aws.String("Team"), Value: aws.String("x")}},
					}, nil).Once()
				m.s3.On("PutBucketTagging", ctx, &s3.PutBucketTaggingInput{
					Bucket: aws.String("b"),
					Tagging: &s3types.Tagging{TagSet: []s3types.Tag{
						{Key: aws.String("Team"), Value: aws.String("x")},
						{Key: aws.String("Owner"), Value: aws.String("bob")},
					}},
				}).Return(&s3.PutBucketTaggingOutput{}, nil).Once()
			},
			test: func(t *testing.T, s Service, m *mockClients) {
				err := policy.Do(ctx, func(ctx context.Context) error {
					return s.TagBucket(ctx, "", "b", bob)
				})
				assert.NoError(t, err)
				m.s3.AssertNumberOfCalls(t, "GetBucketTagging", 2)
				m.s3.AssertExpectations(t)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newService()
			tc.setup(m)
			tc.test(t, s, m)
		})
	}
}

func TestRegionOverride(t *testing.T) {
	ctx := context.Background()
	owner := tags.FromPairs("Owner", "alice")

	tests := []struct {
		name    string
		setup   func(*mockClients)
		call    func(Service, string) error
		regions func(*mockClients) []string
	}{
		{
			name:    "ec2",
			setup:   func(m *mockClients) { m.ec2.On("CreateTags", ctx, mock.Anything).Return(&ec2.CreateTagsOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagInstances(ctx, r, []string{"vpc-1"}, owner) },
			regions: func(m *mockClients) []string { return m.ec2.Regions },
		},
		{
			name: "s3",
			setup: func(m *mockClients) {
				m.s3.On("GetBucketTagging", ctx, mock.Anything).Return(&s3.GetBucketTaggingOutput{}, nil)
				m.s3.On("PutBucketTagging", ctx, mock.Anything).Return(&s3.PutBucketTaggingOutput{}, nil)
			},
			call:    func(s Service, r string) error { return s.TagBucket(ctx, r, "b", owner) },
			regions: func(m *mockClients) []string { return m.s3.Regions },
		},
		{
			name:    "rds",
			setup:   func(m *mockClients) { m.rds.On("AddTagsToResource", ctx, mock.Anything).Return(&rds.AddTagsToResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagDatabase(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.rds.Regions },
		},
		{
			name:    "dynamodb",
			setup:   func(m *mockClients) { m.dynamodb.On("TagResource", ctx, mock.Anything).Return(&dynamodb.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagTable(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.dynamodb.Regions },
		},
		{
			name:    "lambda",
			setup:   func(m *mockClients) { m.lambda.On("TagResource", ctx, mock.Anything).Return(&lambda.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagFunction(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.lambda.Regions },
		},
		{
			name:    "elasticloadbalancing",
			setup:   func(m *mockClients) { m.elb.On("AddTags", ctx, mock.Anything).Return(&elb.AddTagsOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagLoadBalancing(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.elb.Regions },
		},
		{
			name:    "efs",
			setup:   func(m *mockClients) { m.efs.On("TagResource", ctx, mock.Anything).Return(&efs.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagFileSystem(ctx, r, "fs-1", owner) },
			regions: func(m *mockClients) []string { return m.efs.Regions },
		},
		{
			name:    "sns",
			setup:   func(m *mockClients) { m.sns.On("TagResource", ctx, mock.Anything).Return(&sns.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagTopic(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.sns.Regions },
		},
		{
			name:    "sqs",
			setup:   func(m *mockClients) { m.sqs.On("TagQueue", ctx, mock.Anything).Return(&sqs.TagQueueOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagQueue(ctx, r, "https://q", owner) },
			regions: func(m *mockClients) []string { return m.sqs.Regions },
		},
		{
			name: "secretsmanager",
			setup: func(m *mockClients) {
				m.secretsmanager.On("TagResource", ctx, mock.Anything).Return(&secretsmanager.TagResourceOutput{}, nil)
			},
			call:    func(s Service, r string) error { return s.TagSecret(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.secretsmanager.Regions },
		},
		{
			name:    "opensearch",
			setup:   func(m *mockClients) { m.opensearch.On("AddTags", ctx, mock.Anything).Return(&opensearch.AddTagsOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagDomain(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.opensearch.Regions },
		},
		{
			name:    "ecs",
			setup:   func(m *mockClients) { m.ecs.On("TagResource", ctx, mock.Anything).Return(&ecs.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagCluster(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.ecs.Regions },
		},
		{
			name:    "sfn",
			setup:   func(m *mockClients) { m.sfn.On("TagResource", ctx, mock.Anything).Return(&sfn.TagResourceOutput{}, nil) },
			call:    func(s Service, r string) error { return s.TagStateMachine(ctx, r, "arn", owner) },
			regions: func(m *mockClients) []string { return m.sfn.Regions },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newService()
			tc.setup(m)

			assert.NoError(t, tc.call(s, "eu-west-1"))
			assert.NoError(t, tc.call(s, ""))

			regions := tc.regions(m)
			require.NotEmpty(t, regions)

			half := len(regions) / 2
			for _, r := range regions[:half] {
				assert.Equal(t, "eu-west-1", r)
			}
			for _, r := range regions[half:] {
				assert.Equal(t, "", r)
			}
		})
	}
}
