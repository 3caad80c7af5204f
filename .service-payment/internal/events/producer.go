package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/nikolaev/service-payment/internal/domain/entity"
)

type statusChangedEvent struct {
	IntentRef  string    `json:"intent_ref"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) PublishStatusChanged(_ context.Context, ref string, status entity.IntentStatus, occurredAt time.Time) error {
	payload, err := json.Marshal(statusChangedEvent{
		IntentRef:  ref,
		Status:     string(status),
		OccurredAt: occurredAt,
	})
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ref),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	log.Printf("published %s for intent %s to %s[%d]@%d", status, ref, p.topic, partition, offset)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
