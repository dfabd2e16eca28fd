package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesAPI is the subset of the SES v2 client used here
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESEmailSender sends notification emails through Amazon SES
type SESEmailSender struct {
	client    sesAPI
	fromEmail string
	fromName  string
}

// NewSESEmailSender loads the default AWS configuration for region and
// builds an SES client.
func NewSESEmailSender(ctx context.Context, region, fromEmail, fromName string) (*SESEmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newSESEmailSender(sesv2.NewFromConfig(cfg), fromEmail, fromName), nil
}

func newSESEmailSender(client sesAPI, fromEmail, fromName string) *SESEmailSender {
	return &SESEmailSender{client: client, fromEmail: fromEmail, fromName: fromName}
}

// SendEmail sends a plain text email
func (s *SESEmailSender) SendEmail(ctx context.Context, toEmail, toName, subject, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}
	if toName != "" {
		textBody = fmt.Sprintf("Hi %s,\n\n%s", toName, textBody)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}
