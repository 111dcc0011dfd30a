package export

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"edmwatch/types"
)

// Publisher sends newly surfaced items to a Kafka topic so downstream
// consumers (alerting, archival) react without polling the export files.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// PublisherConfig holds Kafka producer configuration.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// NewPublisher creates a synchronous Kafka producer.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: cfg.Topic}, nil
}

// PublishItems sends one message per item, keyed by item ID so repeated
// runs of the same story land in the same partition.
func (p *Publisher) PublishItems(items []types.Item) error {
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal item %s: %w", item.ID, err)
		}

		msg := &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(item.ID),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			return fmt.Errorf("publish item %s: %w", item.ID, err)
		}
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
