package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charsetUTF8 = "UTF-8"

// SESConfig holds AWS credentials for the SES client
type SESConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string // Optional override, e.g. a local SES emulator
}

// SESAPI is the subset of the SES v2 client used by SESSender
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender implements Sender using the AWS SES v2 API
type SESSender struct {
	client SESAPI
}

// NewSESClient creates an SES client with static credentials.
// Build it once per process and share it across requests.
func NewSESClient(ctx context.Context, cfg SESConfig) (*sesv2.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Endpoint != "" {
		return sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}), nil
	}
	return sesv2.NewFromConfig(awsCfg), nil
}

// NewSESSender wraps an SES client
func NewSESSender(client SESAPI) *SESSender {
	return &SESSender{client: client}
}

// Send implements Sender.
func (s *SESSender) Send(ctx context.Context, n Notification) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{n.Recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(n.Subject),
				Body: &types.Body{
					Html: utf8Content(n.HTMLBody),
					Text: utf8Content(n.TextBody),
				},
			},
		},
	}
	if n.ReplyTo != "" {
		input.ReplyToAddresses = []string{n.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: failed to send email: %w", err)
	}
	return nil
}

func utf8Content(data string) *types.Content {
	return &types.Content{
		Data:    aws.String(data),
		Charset: aws.String(charsetUTF8),
	}
}
