package aws

import (
	"context"
	"errors"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// ErrNoTopic is returned when a publish is attempted without a topic ARN
// configured.
var ErrNoTopic = errors.New("sns topic arn not configured")

// SNSPublisher publishes raw event payloads to a topic. The event fan-out
// depends on this interface so tests can swap in a fake.
type SNSPublisher interface {
	Publish(ctx context.Context, topicArn string, message []byte) error
}

// TopicClient is the real SNS-backed publisher.
type TopicClient struct {
	sns *sns.Client
}

func NewTopicClient(cfg sdkaws.Config) *TopicClient {
	return &TopicClient{sns: sns.NewFromConfig(cfg)}
}

// Publish sends message as the raw payload of topicArn. Callers treat
// failures as best-effort and only log them.
func (t *TopicClient) Publish(ctx context.Context, topicArn string, message []byte) error {
	if topicArn == "" {
		return ErrNoTopic
	}
	_, err := t.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: sdkaws.String(topicArn),
		Message:  sdkaws.String(string(message)),
	})
	return err
}
