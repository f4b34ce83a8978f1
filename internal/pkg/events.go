package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventSender 生命周期事件的投递口，服务层只依赖这个签名
type EventSender func(ctx context.Context, eventType string, id uint64, payload any) error

type KafkaProducer struct {
	writer *kafka.Writer
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w}
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

type eventEnvelope struct {
	Type      string    `json:"type"`
	ID        uint64    `json:"id"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sender 以实体 id 作为分区 key，同一实体的事件保序
func (p *KafkaProducer) Sender() EventSender {
	return func(ctx context.Context, eventType string, id uint64, payload any) error {
		value, err := json.Marshal(eventEnvelope{
			Type:      eventType,
			ID:        id,
			Payload:   payload,
			Timestamp: time.Now(),
		})
		if err != nil {
			return err
		}
		return p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(fmt.Sprintf("%d", id)),
			Value: value,
		})
	}
}

// LogSender 默认 sender：未配置 broker 时只打日志
func LogSender(_ context.Context, eventType string, id uint64, payload any) error {
	log.Printf("EVENT type=%s id=%d payload=%+v", eventType, id, payload)
	return nil
}
