package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"queuesmart/pkg/logger"

	"github.com/IBM/sarama"
)

// ErrPublisherClosed is returned for events published after Close
var ErrPublisherClosed = errors.New("prediction publisher closed")

// Publisher publishes prediction outcome events
type Publisher interface {
	PublishPrediction(ctx context.Context, event *PredictionEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka event producer
type KafkaProducerConfig struct {
	Brokers         []string
	PredictionTopic string
	RetryMax        int
	TimeoutMs       int
	RequiredAcks    sarama.RequiredAcks
	CompressionType sarama.CompressionCodec
	MaxMessageBytes int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:         []string{"localhost:9092"},
		PredictionTopic: "queue-predictions",
		RetryMax:        3,
		TimeoutMs:       5000,
		RequiredAcks:    sarama.WaitForLocal,
		CompressionType: sarama.CompressionSnappy,
		MaxMessageBytes: 1000000, // 1MB
	}
}

// KafkaPublisher publishes prediction events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewKafkaPublisher creates a publisher backed by a sarama SyncProducer
func NewKafkaPublisher(config *KafkaProducerConfig, log *logger.Logger) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// Hash partitioner keeps one canteen's events on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("Kafka prediction producer created", "brokers", config.Brokers, "topic", config.PredictionTopic)
	return NewKafkaPublisherWithProducer(producer, config, log), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, config *KafkaProducerConfig, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		config:   config,
		log:      log,
	}
}

// PublishPrediction publishes a single prediction event
func (kp *KafkaPublisher) PublishPrediction(ctx context.Context, event *PredictionEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal prediction event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.PredictionTopic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(event),
		Timestamp: event.CreatedAt,
	}

	kp.mu.RLock()
	if kp.closed {
		kp.mu.RUnlock()
		return ErrPublisherClosed
	}
	partition, offset, err := kp.producer.SendMessage(message)
	kp.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to send prediction event to Kafka: %w", err)
	}

	kp.log.DebugContext(ctx, "Prediction event published",
		"topic", kp.config.PredictionTopic,
		"partition", partition,
		"offset", offset,
		"outcome", string(event.Outcome),
	)
	return nil
}

func (kp *KafkaPublisher) createHeaders(event *PredictionEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte("prediction")},
		{Key: []byte("outcome"), Value: []byte(event.Outcome)},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("queuesmart")},
		{Key: []byte("created_at"), Value: []byte(event.CreatedAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer once in-flight sends return. Later
// publishes fail with ErrPublisherClosed.
func (kp *KafkaPublisher) Close() error {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.closed {
		return nil
	}
	kp.closed = true

	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		kp.log.Info("Kafka prediction producer closed")
	}
	return nil
}

// Noop discards events; used when Kafka is disabled
type Noop struct{}

func (Noop) PublishPrediction(context.Context, *PredictionEvent) error { return nil }
func (Noop) Close() error                                             { return nil }
