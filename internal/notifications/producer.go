package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bandacious/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher sends catalog notifications to downstream consumers.
type Publisher interface {
	PublishCatalogNotification(ctx context.Context, notification *CatalogNotification) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka publisher
type KafkaProducerConfig struct {
	Brokers          []string
	CatalogTopic     string
	ClientID         string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		CatalogTopic:     "catalog-updates",
		ClientID:         "bandacious",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000,
	}
}

// KafkaPublisher publishes catalog notifications to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewKafkaPublisher dials the brokers and returns a synchronous publisher
func NewKafkaPublisher(config *KafkaProducerConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	if config.ClientID != "" {
		saramaConfig.ClientID = config.ClientID
	}

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// Idempotent producers require a single in-flight request
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, config.CatalogTopic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.GetDefault(),
	}
}

// PublishCatalogNotification publishes a single notification to Kafka
func (kp *KafkaPublisher) PublishCatalogNotification(ctx context.Context, notification *CatalogNotification) error {
	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(notification),
		Timestamp: notification.OccurredAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	kp.logger.InfoContext(ctx, "Catalog notification published",
		slog.String("topic", kp.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.String("version", notification.Version),
	)

	return nil
}

func (kp *KafkaPublisher) createHeaders(notification *CatalogNotification) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		{Key: []byte("notification_type"), Value: []byte(notification.Type)},
		{Key: []byte("catalog_version"), Value: []byte(notification.Version)},
		{Key: []byte("producer"), Value: []byte("bandacious-catalog")},
		{Key: []byte("occurred_at"), Value: []byte(notification.OccurredAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (kp *KafkaPublisher) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// NoopPublisher drops notifications. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCatalogNotification(context.Context, *CatalogNotification) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
