package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	TopicCustomerCreated     = "customer.created"
	TopicCustomerDeleted     = "customer.deleted"
	TopicTransactionCreated  = "transaction.created"
	TopicSubscriptionCreated = "subscription.created"
)

// EntityEvent представляет событие жизненного цикла сущности для Kafka
type EntityEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	EntityID  int64     `json:"entity_id"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer интерфейс для отправки событий сущностей
type Producer interface {
	PublishCustomerCreated(ctx context.Context, customer domain.Customer) error
	PublishCustomerDeleted(ctx context.Context, customerID int64) error
	PublishTransactionCreated(ctx context.Context, transaction domain.Transaction) error
	PublishSubscriptionCreated(ctx context.Context, link domain.CustomerPlan) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaProducer создает новый продюсер событий сущностей
func NewKafkaProducer(producer sarama.SyncProducer, log *logger.Logger) Producer {
	return &kafkaProducer{
		producer: producer,
		log:      log,
	}
}

// PublishCustomerCreated публикует событие о создании клиента
func (p *kafkaProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(TopicCustomerCreated, customer.ID, customer)
}

// PublishCustomerDeleted публикует событие об удалении клиента
func (p *kafkaProducer) PublishCustomerDeleted(ctx context.Context, customerID int64) error {
	return p.publishEvent(TopicCustomerDeleted, customerID, nil)
}

// PublishTransactionCreated публикует событие о создании операции
func (p *kafkaProducer) PublishTransactionCreated(ctx context.Context, transaction domain.Transaction) error {
	return p.publishEvent(TopicTransactionCreated, transaction.ID, transaction)
}

// PublishSubscriptionCreated публикует событие о создании подписки
func (p *kafkaProducer) PublishSubscriptionCreated(ctx context.Context, link domain.CustomerPlan) error {
	return p.publishEvent(TopicSubscriptionCreated, link.ID, link)
}

// publishEvent публикует событие сущности в Kafka
func (p *kafkaProducer) publishEvent(topic string, entityID int64, payload any) error {
	event := EntityEvent{
		EventID:   uuid.NewString(),
		Type:      topic,
		EntityID:  entityID,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	messageValue, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal entity event: %w", err)
	}

	// Ключ по ID сущности: события одной сущности попадают в одну партицию
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(entityID, 10)),
		Value: sarama.ByteEncoder(messageValue),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
		},
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish entity event: %w", err)
	}

	p.log.Info("Published event to topic %s: partition=%d offset=%d",
		topic, partition, offset)

	return nil
}

// Close закрывает продюсер
func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

// NoopProducer продюсер-заглушка: используется, когда Kafka выключена,
// и в тестах
type NoopProducer struct{}

func (NoopProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (NoopProducer) PublishCustomerDeleted(ctx context.Context, customerID int64) error {
	return nil
}

func (NoopProducer) PublishTransactionCreated(ctx context.Context, transaction domain.Transaction) error {
	return nil
}

func (NoopProducer) PublishSubscriptionCreated(ctx context.Context, link domain.CustomerPlan) error {
	return nil
}

func (NoopProducer) Close() error {
	return nil
}
