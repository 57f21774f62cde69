package sqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// ClientConfig — параметры подключения к SQS.
type ClientConfig struct {
	Region          string
	Endpoint        string // пусто — AWS; иначе LocalStack/ElasticMQ
	AccessKeyID     string // пусто — стандартная цепочка провайдеров AWS
	SecretAccessKey string

	// WaitTimeSeconds — long polling (0..20). 0 — короткий опрос.
	WaitTimeSeconds int32
	// VisibilityTimeout — 0 означает настройку самой очереди.
	VisibilityTimeout int32
}

// LoadAWSConfig собирает aws.Config: регион и, если заданы, статические ключи.
func LoadAWSConfig(ctx context.Context, cfg *ClientConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

// clientOptions — опции sqs-клиента (кастомный endpoint).
func (c *ClientConfig) clientOptions() []func(*sqs.Options) {
	if c.Endpoint == "" {
		return nil
	}
	endpoint := c.Endpoint
	return []func(*sqs.Options){
		func(o *sqs.Options) { o.BaseEndpoint = aws.String(endpoint) },
	}
}

// normalized — ограничивает значения допустимыми для SQS диапазонами.
func (c *ClientConfig) normalized() ClientConfig {
	out := *c
	if out.WaitTimeSeconds < 0 {
		out.WaitTimeSeconds = 0
	}
	if out.WaitTimeSeconds > 20 {
		out.WaitTimeSeconds = 20
	}
	if out.VisibilityTimeout < 0 {
		out.VisibilityTimeout = 0
	}
	return out
}
