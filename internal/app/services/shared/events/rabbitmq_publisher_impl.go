package events

import (
	"context"
	"fmt"
	"sync"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
	Log       *zap.Logger
}

// NewRabbitMQPublisher declares the durable status queue, enables publisher
// confirms and returns a publisher that waits for each confirm.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		conn:      conn,
		ch:        ch,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		Log:       logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishStatusChange(ctx context.Context, event models.StatusChangeEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: requestID,
		Type:          event.Status,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}

	p.Log.Debug("rabbitMQPublisher.PublishStatusChange published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String(constvars.LoggingResponseIDKey, event.ResponseID),
		zap.String(constvars.LoggingStatusKey, event.Status),
	)
	return nil
}

func (p *rabbitMQPublisher) Ping(ctx context.Context) error {
	if p.conn.IsClosed() {
		return amqp.ErrClosed
	}
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}
