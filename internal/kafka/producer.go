package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer ships audit events to the brokers the back office
// shares with the washing floor systems.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}
	log.Printf("Initialized Kafka Producer for brokers %v", brokers)
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	log.Println("Closing Kafka Producer")
	return p.writer.Close()
}

// ConsoleProducer stands in for Kafka in local development.
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	log.Println("Initialized Console Kafka Producer")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		fmt.Printf("\n--- KAFKA_PRODUCER (CONSOLE) ---\n")
		fmt.Printf("Topic: %s\n", topic)
		fmt.Printf("Key: %s\n", string(key))
		fmt.Printf("Value: %s\n", string(value))
		fmt.Printf("--- END KAFKA ---")
		return nil
	case <-ctx.Done():
		log.Printf("KAFKA_PRODUCER (CANCELLED): Topic=[%s], Key=[%s]", topic, string(key))
		return ctx.Err()
	}
}

func (p *ConsoleProducer) Close() error {
	log.Println("Closing Console Kafka Producer")
	return nil
}
