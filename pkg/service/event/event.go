package event

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/smithy-go"
)

type EventBridgeClient interface {
	PutRule(ctx context.Context, params *eventbridge.PutRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutRuleOutput, error)
	PutTargets(ctx context.Context, params *eventbridge.PutTargetsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutTargetsOutput, error)
	RemoveTargets(ctx context.Context, params *eventbridge.RemoveTargetsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.RemoveTargetsOutput, error)
	DeleteRule(ctx context.Context, params *eventbridge.DeleteRuleInput, optFns ...func(*eventbridge.Options)) (*eventbridge.DeleteRuleOutput, error)
}

type LambdaClient interface {
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	RemovePermission(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error)
}

type Client struct {
	EventBridge EventBridgeClient
	Lambda      LambdaClient
}

type Service struct {
	Client Client
}

func FromClients(eventBridge EventBridgeClient, lambdaClient LambdaClient) Service {
	return Service{
		Client: Client{
			EventBridge: eventBridge,
			Lambda:      lambdaClient,
		},
	}
}

// Put creates or replaces a rule matching pattern and targets the function
// with it, granting EventBridge permission to invoke the function.
func (s Service) Put(ctx context.Context, busName, ruleName, pattern, functionName, functionArn string) error {
	putRuleOutput, err := s.Client.EventBridge.PutRule(ctx, &eventbridge.PutRuleInput{
		EventBusName: aws.String(busName),
		Name:         aws.String(ruleName),
		State:        types.RuleStateEnabled,
		Description:  aws.String("managed by autotag"),
		EventPattern: aws.String(pattern),
	})
	if err != nil {
		return err
	}

	_, err = s.Client.EventBridge.PutTargets(ctx, &eventbridge.PutTargetsInput{
		EventBusName: aws.String(busName),
		Rule:         aws.String(ruleName),
		Targets: []types.Target{
			{
				Id:  aws.String(functionName),
				Arn: aws.String(functionArn),
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = s.Client.Lambda.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(ruleName),
		Action:       aws.String("lambda:InvokeFunction"),
		Principal:    aws.String("events.amazonaws.com"),
		SourceArn:    putRuleOutput.RuleArn,
	})

	return ignoreCode(err, "ResourceConflictException")
}

// Delete removes the rule, its target and the invoke permission. Pieces
// that are already gone are skipped.
func (s Service) Delete(ctx context.Context, busName, ruleName, functionName string) error {
	_, err := s.Client.EventBridge.RemoveTargets(ctx, &eventbridge.RemoveTargetsInput{
		EventBusName: aws.String(busName),
		Rule:         aws.String(ruleName),
		Ids:          []string{functionName},
	})
	if err := ignoreCode(err, "ResourceNotFoundException"); err != nil {
		return err
	}

	_, err = s.Client.EventBridge.DeleteRule(ctx, &eventbridge.DeleteRuleInput{
		EventBusName: aws.String(busName),
		Name:         aws.String(ruleName),
	})
	if err := ignoreCode(err, "ResourceNotFoundException"); err != nil {
		return err
	}

	_, err = s.Client.Lambda.RemovePermission(ctx, &lambda.RemovePermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(ruleName),
	})

	return ignoreCode(err, "ResourceNotFoundException")
}

func ignoreCode(err error, code string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == code {
		return nil
	}
	return err
}
