package sdk

import (
	"context"

	// config
	"github.com/linecard/autotag/pkg/convention/config"

	// services
	"github.com/linecard/autotag/pkg/service/event"
	"github.com/linecard/autotag/pkg/service/resource"

	// conventions
	"github.com/linecard/autotag/pkg/convention/autotag"
	"github.com/linecard/autotag/pkg/convention/bus"
	"github.com/linecard/autotag/pkg/convention/dispatch"

	// clients
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/efs"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/opensearch"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type Clients struct {
	StsClient            *sts.Client
	Ec2Client            *ec2.Client
	S3Client             *s3.Client
	RdsClient            *rds.Client
	DynamoDBClient       *dynamodb.Client
	LambdaClient         *lambda.Client
	ElbClient            *elb.Client
	EfsClient            *efs.Client
	SnsClient            *sns.Client
	SqsClient            *sqs.Client
	SecretsManagerClient *secretsmanager.Client
	OpenSearchClient     *opensearch.Client
	EcsClient            *ecs.Client
	SfnClient            *sfn.Client
	EventBridgeClient    *eventbridge.Client
}

type Services struct {
	Resource resource.Service
	Event    event.Service
}

type Conventions struct {
	Registry     dispatch.Registry
	Autotag      autotag.Convention
	Subscription bus.Convention
}

type API struct {
	Conventions
	Clients  Clients
	Services Services
	Config   config.Config
}

func Init(ctx context.Context, awsConfig aws.Config, config config.Config) (API, error) {
	clients, err := InitClients(ctx, awsConfig)
	if err != nil {
		return API{}, err
	}

	services, err := InitServices(ctx, clients)
	if err != nil {
		return API{}, err
	}

	conventions, err := InitConventions(ctx, config, services.Resource, services)
	if err != nil {
		return API{}, err
	}

	return API{
		Conventions: conventions,
		Clients:     clients,
		Services:    services,
		Config:      config,
	}, nil
}

// InitConventions wires the dispatch table over tagger. Replays that must not
// touch any resource pass a recording tagger instead of the resource service.
func InitConventions(ctx context.Context, config config.Config, tagger dispatch.Tagger, services Services) (Conventions, error) {
	registry := dispatch.NewRegistry(tagger, config.Policy())

	return Conventions{
		Registry:     registry,
		Autotag:      autotag.FromRouter(config, registry),
		Subscription: bus.FromServices(registry, services.Event),
	}, nil
}

func InitServices(ctx context.Context, clients Clients) (Services, error) {
	return Services{
		Resource: resource.FromClients(resource.Client{
			Ec2:            clients.Ec2Client,
			S3:             clients.S3Client,
			Rds:            clients.RdsClient,
			DynamoDB:       clients.DynamoDBClient,
			Lambda:         clients.LambdaClient,
			Elb:            clients.ElbClient,
			Efs:            clients.EfsClient,
			Sns:            clients.SnsClient,
			Sqs:            clients.SqsClient,
			SecretsManager: clients.SecretsManagerClient,
			OpenSearch:     clients.OpenSearchClient,
			Ecs:            clients.EcsClient,
			Sfn:            clients.SfnClient,
		}),
		Event: event.FromClients(clients.EventBridgeClient, clients.LambdaClient),
	}, nil
}

func InitClients(ctx context.Context, awsConfig aws.Config) (Clients, error) {
	return Clients{
		StsClient:            sts.NewFromConfig(awsConfig),
		Ec2Client:            ec2.NewFromConfig(awsConfig),
		S3Client:             s3.NewFromConfig(awsConfig),
		RdsClient:            rds.NewFromConfig(awsConfig),
		DynamoDBClient:       dynamodb.NewFromConfig(awsConfig),
		LambdaClient:         lambda.NewFromConfig(awsConfig),
		ElbClient:            elb.NewFromConfig(awsConfig),
		EfsClient:            efs.NewFromConfig(awsConfig),
		SnsClient:            sns.NewFromConfig(awsConfig),
		SqsClient:            sqs.NewFromConfig(awsConfig),
		SecretsManagerClient: secretsmanager.NewFromConfig(awsConfig),
		OpenSearchClient:     opensearch.NewFromConfig(awsConfig),
		EcsClient:            ecs.NewFromConfig(awsConfig),
		SfnClient:            sfn.NewFromConfig(awsConfig),
		EventBridgeClient:    eventbridge.NewFromConfig(awsConfig),
	}, nil
}
