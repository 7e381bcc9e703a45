package handler

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/model"
	"github.com/bookhaven/loan-service/pkg/kafka"
)

type releaseWaitlist func(ctx context.Context, itemUid string) ([]model.WaitlistEntry, error)

// Consumer drains item waitlists on stock-replenished events.
type Consumer struct {
	releaseWaitlistHandler releaseWaitlist
	log                    *zap.Logger
	ready                  chan bool
}

func NewConsumer(release releaseWaitlist, log *zap.Logger) *Consumer {
	return &Consumer{
		releaseWaitlistHandler: release,
		log:                    log.Named("consumer"),
		ready:                  make(chan bool),
	}
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
			var ev model.StockReplenished
			if err := kafka.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// drain is at-most-once per entry store-side; a redelivered
			// event simply finds nothing to release
			if _, err := consumer.releaseWaitlistHandler(context.Background(), ev.ItemUid); err != nil {
				consumer.log.Error("consumer.releaseWaitlistHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
