package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/lingua-service/internal/events"
	"github.com/samber/lo"
)

const (
	PublisherKafka = "kafka"
	PublisherMock  = "mock"
)

// EventConfig selects where learning events go.
type EventConfig struct {
	Enabled      bool
	Publisher    string
	KafkaBrokers string
	Topic        string
}

// GetKafkaBrokers splits the comma-separated broker list, skipping blanks.
func (c *EventConfig) GetKafkaBrokers() []string {
	return lo.FilterMap(strings.Split(c.KafkaBrokers, ","), func(b string, _ int) (string, bool) {
		b = strings.TrimSpace(b)
		return b, b != ""
	})
}

// CreateEventPublisher returns the Kafka publisher when events are enabled and
// configured for Kafka. Every other setting records events in memory.
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled || c.Publisher == PublisherMock {
		logger.Info("Learning events kept in memory", "enabled", c.Enabled)
		return events.NewMockEventPublisher(logger), nil
	}
	if c.Publisher != PublisherKafka {
		logger.Warn("Unknown event publisher, keeping events in memory", "publisher", c.Publisher)
		return events.NewMockEventPublisher(logger), nil
	}

	brokers := c.GetKafkaBrokers()
	if len(brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is empty")
	}

	logger.Info("Publishing learning events to Kafka", "brokers", brokers, "topic", c.Topic)
	return events.NewKafkaEventPublisher(events.PublisherConfig{
		KafkaBrokers: brokers,
		TopicName:    c.Topic,
		Logger:       logger,
	})
}
