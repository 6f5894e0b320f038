package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// ProducerAPI is implemented by the Kafka producer and by test doubles.
type ProducerAPI interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderEvent writes one lifecycle event, keyed by order ID so all
// events of an order land on the same partition in order.
func (p *Producer) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
