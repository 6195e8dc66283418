package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"tastebite/internal/domain"
	"tastebite/internal/service"
)

type KafkaOrderPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaOrderPublisher(writer *kafka.Writer) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{Writer: writer}
}

func (p *KafkaOrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

var _ service.OrderPublisher = (*KafkaOrderPublisher)(nil)
