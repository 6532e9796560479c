// This file provides the publisher side of the request.created queue.
// Errors are logged and returned so callers can ignore failures without
// interrupting the main request flow: a lost broker must never fail a
// quote submission.
package queue

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"
)

// Publisher publishes RequestCreatedEvents. QuoteHandler accepts this
// interface so tests can capture published events.
type Publisher interface {
    PublishRequestCreated(ctx context.Context, event RequestCreatedEvent) error
}

// AMQPPublisher publishes to RabbitMQ, dialing per publish. Connection
// churn is negligible at this application's request volume and keeps
// the publisher stateless across broker restarts.
type AMQPPublisher struct {
    URL string
}

func NewAMQPPublisher() *AMQPPublisher { return &AMQPPublisher{URL: BrokerURL()} }

// PublishRequestCreated publishes a RequestCreatedEvent to the
// request.created queue. Messages are marked persistent. The function
// never panics; any error is logged and returned so the caller can
// choose to ignore it.
func (p *AMQPPublisher) PublishRequestCreated(ctx context.Context, event RequestCreatedEvent) error {
    conn, err := amqp.Dial(p.URL)
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        requestQueueName, // name
        true,             // durable
        false,            // autoDelete
        false,            // exclusive
        false,            // noWait
        nil,              // args
    ); err != nil {
        log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: marshal event failed")
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",               // default exchange
        requestQueueName, // routing key = queue name
        false,            // mandatory
        false,            // immediate
        pub,
    ); err != nil {
        log.Warn().Err(err).Msg("rabbitmq: publish failed")
        return err
    }

    return nil
}
