package database

import (
	"context"
	"log"

	appconfig "quotedesk/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the client used by the quotation archive.
// A non-empty Endpoint points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Printf("[archive][dynamodb] failed to create aws config err=%v", err)
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, dynamoOptions(cfg)...), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

func dynamoOptions(cfg appconfig.DynamoDBConfig) []func(*dynamodb.Options) {
	if cfg.Endpoint == "" {
		return nil
	}
	log.Printf("[archive][dynamodb] using custom endpoint=%s", cfg.Endpoint)
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		},
	}
}
