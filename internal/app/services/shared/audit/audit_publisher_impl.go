package audit

import (
	"context"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type auditPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewAuditPublisher opens a channel on conn and declares the durable audit queue.
func NewAuditPublisher(conn *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AuditPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return newAuditPublisher(channel, logger, queue), nil
}

func newAuditPublisher(channel amqpChannel, logger *zap.Logger, queue string) *auditPublisher {
	return &auditPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *auditPublisher) PublishAuditEvent(ctx context.Context, event *contracts.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("auditPublisher.PublishAuditEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.RequestID,
		Type:         event.Event,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("auditPublisher.PublishAuditEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	return nil
}
