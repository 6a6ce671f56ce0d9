package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

type applyEvent func(ctx context.Context, ev model.BookingEvent) error

type Consumer struct {
	apply applyEvent
	log   *zap.Logger
	ready chan bool
}

func NewConsumer(apply applyEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		apply: apply,
		log:   log.Named("consumer"),
		ready: make(chan bool),
	}
}

func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev model.BookingEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal booking event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// Left unmarked on failure so the event is retried.
			if err := consumer.apply(context.Background(), ev); err != nil {
				consumer.log.Error("apply booking event", zap.String("type", ev.Type), zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed",
				zap.String("type", ev.Type),
				zap.String("number", ev.Number),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
