package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

const (
	defaultTopic        = "ledger.events"
	defaultConnAttempts = 10
	defaultConnDelay    = 5 * time.Second
	eventTypeHeader     = "event-type"
)

// Config configures the kafka publisher
type Config struct {
	Brokers         []string
	Topic           string
	ConnectAttempts int
	ConnectDelay    time.Duration
}

// Publisher sends ledger events to a kafka topic, keyed by user so a user's events stay ordered
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   coreport.Logger
}

var _ service.EventPublisher = (*Publisher)(nil)

// NewSaramaConfig returns the producer settings used for ledger events
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_1_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Producer.Retry.Max = 5
	config.Net.MaxOpenRequests = 1
	return config
}

// NewPublisher connects a sync producer, waiting for the brokers to come up
func NewPublisher(ctx context.Context, config Config, timeProvider coreport.TimeProvider, logger coreport.Logger) (*Publisher, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher needs at least one broker")
	}
	attempts := config.ConnectAttempts
	if attempts <= 0 {
		attempts = defaultConnAttempts
	}
	delay := config.ConnectDelay
	if delay <= 0 {
		delay = defaultConnDelay
	}

	saramaConfig := NewSaramaConfig()
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
		if err == nil {
			logger.Info("Kafka producer initialized", map[string]any{
				"brokers": config.Brokers,
				"topic":   topicOrDefault(config.Topic),
			})
			return NewPublisherWithProducer(producer, config.Topic, logger), nil
		}
		lastErr = err

		logger.Warn("Waiting for kafka", map[string]any{
			"attempt":      attempt,
			"max_attempts": attempts,
			"error":        err.Error(),
		})
		if attempt == attempts {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		timeProvider.Sleep(coreport.Duration(delay))
	}

	return nil, fmt.Errorf("failed to start kafka producer after %d attempts: %w", attempts, lastErr)
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger coreport.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topicOrDefault(topic),
		logger:   logger,
	}
}

func topicOrDefault(topic string) string {
	if topic == "" {
		return defaultTopic
	}
	return topic
}

// Publish sends one event and waits for all in-sync replicas to acknowledge it
func (p *Publisher) Publish(ctx context.Context, event service.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send %s event: %w", event.Type, err)
	}

	p.logger.Debug("Published ledger event", map[string]any{
		"event_type": event.Type,
		"user_id":    event.UserID,
		"payment_id": event.PaymentID,
		"topic":      p.topic,
		"partition":  partition,
		"offset":     offset,
	})
	return nil
}

// Close flushes and closes the producer
func (p *Publisher) Close() error {
	return p.producer.Close()
}
