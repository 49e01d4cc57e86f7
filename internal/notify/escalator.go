// internal/notify/escalator.go
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"support-responder/internal/common/errors"
	"support-responder/internal/common/logger"
)

// TopicPublisher is the slice of the SNS client the escalator needs.
type TopicPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Escalator pushes complaint notifications to the escalation topic so
// the service desk picks them up outside the reply path.
type Escalator struct {
	client   TopicPublisher
	topicARN string
	logger   logger.Logger
}

func NewEscalator(client TopicPublisher, topicARN string, log logger.Logger) *Escalator {
	return &Escalator{
		client:   client,
		topicARN: topicARN,
		logger:   log.WithFields(map[string]interface{}{"component": "escalator"}),
	}
}

type complaintNotice struct {
	Reference  string    `json:"reference"`
	Query      string    `json:"query"`
	ReceivedAt time.Time `json:"received_at"`
}

// EscalateComplaint publishes the complaint reference and original
// query to the escalation topic.
func (e *Escalator) EscalateComplaint(ctx context.Context, reference, query string) error {
	payload, err := json.Marshal(complaintNotice{
		Reference:  reference,
		Query:      query,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.NewNotificationSendFailedError("sns", err)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(e.topicARN),
		Subject:  aws.String("Customer complaint " + reference),
		Message:  aws.String(string(payload)),
	}

	result, err := e.client.Publish(ctx, input)
	if err != nil {
		e.logger.WithError(err).Error("failed to publish complaint escalation", map[string]interface{}{
			"reference": reference,
		})
		return errors.NewNotificationSendFailedError("sns", err)
	}

	e.logger.Info("complaint escalated", map[string]interface{}{
		"reference": reference,
		"messageId": aws.ToString(result.MessageId),
	})
	return nil
}
