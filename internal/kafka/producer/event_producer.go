package producer

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
	TopicCustomerCreated = "customer.created"
	TopicCustomerDeleted = "customer.deleted"
	TopicOrderCreated    = "order.created"
)

// CustomerEvent представляет событие клиента для Kafka
type CustomerEvent struct {
	EventID    string    `json:"event_id"`
	CustomerID int       `json:"customer_id"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderEvent представляет событие заказа для Kafka
type OrderEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     int       `json:"order_id"`
	CustomerID  int       `json:"customer_id"`
	ProductName string    `json:"product_name"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventProducer интерфейс для отправки доменных событий
type EventProducer interface {
	PublishCustomerCreated(ctx context.Context, customer domain.Customer) error
	PublishCustomerDeleted(ctx context.Context, customerID int) error
	PublishOrderCreated(ctx context.Context, order domain.Order) error
	Close() error
}

type kafkaEventProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaEventProducer создает новый продюсер доменных событий
func NewKafkaEventProducer(producer sarama.SyncProducer, log *logger.Logger) EventProducer {
	return &kafkaEventProducer{
		producer: producer,
		log:      log,
	}
}

// PublishCustomerCreated публикует событие о создании клиента
func (p *kafkaEventProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	event := CustomerEvent{
		EventID:    uuid.New().String(),
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		Timestamp:  time.Now().UTC(),
	}

	return p.publish(TopicCustomerCreated, strconv.Itoa(customer.ID), event)
}

// PublishCustomerDeleted публикует событие об удалении клиента
func (p *kafkaEventProducer) PublishCustomerDeleted(ctx context.Context, customerID int) error {
	event := CustomerEvent{
		EventID:    uuid.New().String(),
		CustomerID: customerID,
		Timestamp:  time.Now().UTC(),
	}

	return p.publish(TopicCustomerDeleted, strconv.Itoa(customerID), event)
}

// PublishOrderCreated публикует событие о создании заказа
func (p *kafkaEventProducer) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	event := OrderEvent{
		EventID:     uuid.New().String(),
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProductName: order.ProductName,
		Amount:      order.Amount,
		Timestamp:   time.Now().UTC(),
	}

	// Ключ — CustomerID, чтобы события одного клиента попадали в одну партицию
	return p.publish(TopicOrderCreated, strconv.Itoa(order.CustomerID), event)
}

func (p *kafkaEventProducer) publish(topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Errorw("Failed to marshal event", "error", err, "topic", topic)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Errorw("Failed to publish event", "error", err, "topic", topic)
		return fmt.Errorf("failed to publish event to %s: %w", topic, err)
	}

	p.log.Debugw("Event published", "topic", topic, "partition", partition, "offset", offset)
	return nil
}

// Close закрывает соединение продюсера Kafka
func (p *kafkaEventProducer) Close() error {
	return p.producer.Close()
}

// NoOpEventProducer заглушка, когда Kafka недоступна или не настроена
type NoOpEventProducer struct{}

func (NoOpEventProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (NoOpEventProducer) PublishCustomerDeleted(ctx context.Context, customerID int) error {
	return nil
}

func (NoOpEventProducer) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	return nil
}

func (NoOpEventProducer) Close() error { return nil }
