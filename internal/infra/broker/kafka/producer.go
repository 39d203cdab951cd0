package kafka

import (
	"context"

	"github.com/IBM/sarama"

	"github.com/lndominguez/apexutravel-sub004/internal/infra/obs"
)

// Producer publishes offer lifecycle events synchronously with idempotent
// acks, so an admin save either observes the publish error or the event is
// durably in the log.
type Producer struct {
	sync        sarama.SyncProducer
	topicPrefix string
}

func NewProducer(brokers []string, topicPrefix string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sync: sync, topicPrefix: topicPrefix}, nil
}

// Publish sends one event, carrying the request id as a header when present.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	var headers []sarama.RecordHeader
	if requestID := obs.RequestIDFromContext(ctx); requestID != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte("request_id"), Value: []byte(requestID)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   p.topicPrefix + topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}
	_, _, err := p.sync.SendMessage(msg)
	return err
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}
