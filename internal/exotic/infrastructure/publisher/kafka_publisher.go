package publisher

import (
	"context"

	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"github.com/wyfcoding/exoticpricing/pkg/mq"
)

// KafkaResultPublisher 将估值事件发布到 Kafka
type KafkaResultPublisher struct {
	producer *mq.KafkaProducer
	topic    string
}

// NewKafkaResultPublisher 创建 Kafka 事件发布器
func NewKafkaResultPublisher(producer *mq.KafkaProducer, topic string) *KafkaResultPublisher {
	return &KafkaResultPublisher{producer: producer, topic: topic}
}

type envelope struct {
	EventType string `json:"event_type"`
	Payload   any    `json:"payload"`
}

func (p *KafkaResultPublisher) PublishExoticOptionPriced(ctx context.Context, event *domain.ExoticOptionPricedEvent) error {
	return p.producer.SendMessage(ctx, p.topic, event.Symbol, envelope{
		EventType: domain.ExoticOptionPricedEventType,
		Payload:   event,
	})
}

func (p *KafkaResultPublisher) PublishConvergenceSweepDone(ctx context.Context, event *domain.ConvergenceSweepDoneEvent) error {
	return p.producer.SendMessage(ctx, p.topic, event.Symbol, envelope{
		EventType: domain.ConvergenceSweepDoneEventType,
		Payload:   event,
	})
}

func (p *KafkaResultPublisher) PublishVolatilityEstimated(ctx context.Context, event *domain.VolatilityEstimatedEvent) error {
	return p.producer.SendMessage(ctx, p.topic, event.Symbol, envelope{
		EventType: domain.VolatilityEstimatedEventType,
		Payload:   event,
	})
}
