package dispatch

import (
	"context"

	"github.com/linecard/autotag/pkg/convention/extract"
	"github.com/linecard/autotag/pkg/convention/tags"
)

const (
	SourceEC2            = "ec2.amazonaws.com"
	SourceS3             = "s3.amazonaws.com"
	SourceRDS            = "rds.amazonaws.com"
	SourceDynamoDB       = "dynamodb.amazonaws.com"
	SourceLambda         = "lambda.amazonaws.com"
	SourceELB            = "elasticloadbalancing.amazonaws.com"
	SourceEFS            = "elasticfilesystem.amazonaws.com"
	SourceSNS            = "sns.amazonaws.com"
	SourceSQS            = "sqs.amazonaws.com"
	SourceSecretsManager = "secretsmanager.amazonaws.com"
	SourceOpenSearch     = "es.amazonaws.com"
	SourceECS            = "ecs.amazonaws.com"
	SourceStepFunctions  = "states.amazonaws.com"
)

// single adapts a provider call that addresses one resource per request.
func single(fn func(ctx context.Context, region, id string, t tags.Set) error) tagFunc {
	return func(ctx context.Context, region string, ids []string, t tags.Set) error {
		return fn(ctx, region, ids[0], t)
	}
}

// Routes lists every supported creation event.
func Routes(t Tagger) []Route {
	ec2 := func(name, resource string, path ...string) Route {
		return Route{
			Key:      Key{SourceEC2, name},
			Resource: resource,
			Extract:  extract.Scalar(append([]string{"responseElements"}, path...)...),
			tag:      t.TagInstances,
		}
	}

	arn := func(source, name, resource string, fn func(context.Context, string, string, tags.Set) error, path ...string) Route {
		return Route{
			Key:      Key{source, name},
			Resource: resource,
			Extract:  extract.Scalar(append([]string{"responseElements"}, path...)...),
			tag:      single(fn),
		}
	}

	return []Route{
		{
			Key:      Key{SourceEC2, "RunInstances"},
			Resource: "instances",
			Extract:  extract.RunInstances,
			tag:      t.TagInstances,
		},
		ec2("CreateSecurityGroup", "security group", "groupId"),
		ec2("CreateImage", "image", "imageId"),
		ec2("CreateVolume", "volume", "volumeId"),
		ec2("CreateSnapshot", "snapshot", "snapshotId"),
		ec2("AllocateAddress", "elastic ip", "allocationId"),
		ec2("CreateNetworkInterface", "network interface", "networkInterface", "networkInterfaceId"),
		ec2("CreateVpc", "vpc", "vpc", "vpcId"),
		ec2("CreateSubnet", "subnet", "subnet", "subnetId"),
		ec2("CreateInternetGateway", "internet gateway", "internetGateway", "internetGatewayId"),
		ec2("CreateNatGateway", "nat gateway", "natGateway", "natGatewayId"),

		{
			Key:      Key{SourceS3, "CreateBucket"},
			Resource: "bucket",
			Extract:  extract.Scalar("requestParameters", "bucketName"),
			tag:      single(t.TagBucket),
		},

		arn(SourceRDS, "CreateDBInstance", "db instance", t.TagDatabase, "dBInstanceArn"),
		arn(SourceRDS, "CreateDBCluster", "db cluster", t.TagDatabase, "dBClusterArn"),
		arn(SourceDynamoDB, "CreateTable", "table", t.TagTable, "tableDescription", "tableArn"),
		arn(SourceLambda, "CreateFunction20150331", "function", t.TagFunction, "functionArn"),

		{
			Key:      Key{SourceELB, "CreateLoadBalancer"},
			Resource: "load balancer",
			Extract:  extract.FirstOf("loadBalancerArn", "responseElements", "loadBalancers"),
			tag:      single(t.TagLoadBalancing),
		},
		{
			Key:      Key{SourceELB, "CreateTargetGroup"},
			Resource: "target group",
			Extract:  extract.FirstOf("targetGroupArn", "responseElements", "targetGroups"),
			tag:      single(t.TagLoadBalancing),
		},

		arn(SourceEFS, "CreateFileSystem", "file system", t.TagFileSystem, "fileSystemId"),
		arn(SourceSNS, "CreateTopic", "topic", t.TagTopic, "topicArn"),
		arn(SourceSQS, "CreateQueue", "queue", t.TagQueue, "queueUrl"),
		arn(SourceSecretsManager, "CreateSecret", "secret", t.TagSecret, "aRN"),
		arn(SourceOpenSearch, "CreateDomain", "domain", t.TagDomain, "domainStatus", "aRN"),
		arn(SourceECS, "CreateCluster", "cluster", t.TagCluster, "cluster", "clusterArn"),
		arn(SourceStepFunctions, "CreateStateMachine", "state machine", t.TagStateMachine, "stateMachineArn"),
	}
}
