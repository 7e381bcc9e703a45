package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	NotificationsTopic = "loan.notifications"
	StockAlertsTopic   = "loan.stock-alerts"
	ReplenishedTopic   = "loan.stock-replenished"

	WaitlistConsumerGroup = "loan-waitlist-processor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group session loop until the group is closed.
func Consume(cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topics ...string) {
	ctx := context.Background()
	for {
		if err := cg.Consume(ctx, topics, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			time.Sleep(time.Second)
		}
	}
}

// Publisher is a thin JSON publishing facade over a sarama sync producer.
type Publisher interface {
	Publish(topic string, v any) error
	Close() error
}

type publisher struct {
	producer sarama.SyncProducer
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisher{producer: producer}
}

func (p *publisher) Publish(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

func (p *publisher) Close() error {
	return p.producer.Close()
}

// Unmarshal decodes consumed message payloads with the same codec Publish uses.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
