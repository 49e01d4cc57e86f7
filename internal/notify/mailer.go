// internal/notify/mailer.go
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"support-responder/internal/common/errors"
	"support-responder/internal/common/logger"
)

// EmailSender is the slice of the SES client the mailer needs.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Mailer delivers finished responses to the requestor by email.
// Delivery is best-effort and never alters the response text.
type Mailer struct {
	client    EmailSender
	fromEmail string
	logger    logger.Logger
}

func NewMailer(client EmailSender, fromEmail string, log logger.Logger) *Mailer {
	return &Mailer{
		client:    client,
		fromEmail: fromEmail,
		logger:    log.WithFields(map[string]interface{}{"component": "mailer"}),
	}
}

// SendReply mails body to the requestor with the given subject.
func (m *Mailer) SendReply(ctx context.Context, toEmail, subject, body string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(m.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		m.logger.WithError(err).Error("failed to send reply email", map[string]interface{}{
			"to": toEmail,
		})
		return errors.NewNotificationSendFailedError("email", err)
	}

	m.logger.Info("reply email sent", map[string]interface{}{
		"to":        toEmail,
		"messageId": aws.ToString(result.MessageId),
	})
	return nil
}
