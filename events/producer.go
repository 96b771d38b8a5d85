// Package events publishes generation events to Kafka for downstream
// consumers (rendering pipelines, analytics). The producer is optional:
// when no brokers are configured the rest of the system runs without it.
package events

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"autotube/types"
)

const videoGeneratedTopic = "autotube.video.generated"

// VideoGeneratedEvent is the message emitted after a video record is
// generated and stored.
type VideoGeneratedEvent struct {
	Video     types.VideoRecord `json:"video"`
	Source    string            `json:"source"`
	EmittedAt time.Time         `json:"emitted_at"`
}

// Producer wraps a Kafka sync producer for generation events.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerFromEnv creates a producer when KAFKA_BROKERS is set
// (comma-separated host:port list). Returns nil, nil when unset.
func NewProducerFromEnv() (*Producer, error) {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), saramaConfig)
	if err != nil {
		return nil, err
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = videoGeneratedTopic
	}

	log.Printf("Kafka producer started (topic: %s)", topic)
	return &Producer{producer: producer, topic: topic}, nil
}

// VideoGenerated emits a generation event. Emission is best effort; a nil
// producer is a no-op so call sites need no guards.
func (p *Producer) VideoGenerated(video types.VideoRecord, source string) {
	if p == nil {
		return
	}

	event := VideoGeneratedEvent{
		Video:     video,
		Source:    source,
		EmittedAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Kafka: failed to marshal event for video %s: %v", video.ID, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(video.ID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Kafka: failed to publish event for video %s: %v", video.ID, err)
	}
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
