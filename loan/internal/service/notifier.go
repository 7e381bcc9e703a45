package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/model"
	"github.com/bookhaven/loan-service/pkg/circuit_breaker"
	"github.com/bookhaven/loan-service/pkg/kafka"
)

// Notifier emits post-commit notification and alert events. Emission is
// observational: failures are logged and swallowed, never surfaced to the
// caller of an already-committed operation.
type Notifier interface {
	Notify(typ model.NotificationType, message string, payload map[string]any)
	Alert(typ model.NotificationType, message string, payload map[string]any)
	StockReplenished(ev model.StockReplenished)
}

type notifier struct {
	pub kafka.Publisher
	cb  circuit_breaker.CircuitBreaker
	log *zap.Logger
}

func NewNotifier(pub kafka.Publisher, log *zap.Logger) Notifier {
	const (
		recordLength     = 20
		timeout          = 10 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	return &notifier{
		pub: pub,
		cb:  circuit_breaker.NewCircuitBreaker(recordLength, timeout, percentile, recoveryRequests),
		log: log.Named("notifier"),
	}
}

func (n *notifier) Notify(typ model.NotificationType, message string, payload map[string]any) {
	n.publish(kafka.NotificationsTopic, typ, message, payload)
}

func (n *notifier) Alert(typ model.NotificationType, message string, payload map[string]any) {
	n.publish(kafka.StockAlertsTopic, typ, message, payload)
}

func (n *notifier) StockReplenished(ev model.StockReplenished) {
	if err := n.cb.Call(func() error {
		return n.pub.Publish(kafka.ReplenishedTopic, ev)
	}); err != nil {
		n.log.Error("publish stock replenished", zap.String("item_uid", ev.ItemUid), zap.Error(err))
	}
}

func (n *notifier) publish(topic string, typ model.NotificationType, message string, payload map[string]any) {
	ev := model.Notification{
		Type:      typ,
		Message:   message,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := n.cb.Call(func() error {
		return n.pub.Publish(topic, ev)
	}); err != nil {
		n.log.Error("publish notification",
			zap.String("topic", topic),
			zap.String("type", string(typ)),
			zap.Error(err))
	}
}
