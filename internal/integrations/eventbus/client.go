package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel часть *amqp.Channel, которая нужна клиенту
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Client публикует события бронирований в topic exchange RabbitMQ
type Client struct {
	conn     *amqp.Connection
	ch       channel
	mu       sync.Mutex
	exchange string
	timeout  time.Duration
	log      Logger
}

// NewClient подключается к брокеру и объявляет durable topic exchange
func NewClient(url, exchange string, timeout time.Duration, log Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	c := newClient(ch, exchange, timeout, log)
	c.conn = conn
	return c, nil
}

func newClient(ch channel, exchange string, timeout time.Duration, log Logger) *Client {
	return &Client{
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		log:      log,
	}
}

// Publish отправляет событие, routing key совпадает с типом события
func (c *Client) Publish(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.PublishWithContext(ctx, c.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("%w: %s booking_id=%d: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	return nil
}

// PublishWithGracefulDegradation публикует событие, не возвращая ошибку.
// Бронирование уже сохранено, недоступность брокера только логируется.
func (c *Client) PublishWithGracefulDegradation(ctx context.Context, event BookingEvent) {
	if err := c.Publish(ctx, event); err != nil {
		c.log.Error("Event bus unavailable, event %s for booking_id=%d dropped: %v", event.Type, event.BookingID, err)
		return
	}
	c.log.Info("Published %s for booking_id=%d", event.Type, event.BookingID)
}

// Close закрывает канал и соединение
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.Close(); err != nil {
		return err
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Noop публикатор для конфигурации без брокера
type Noop struct{}

// PublishWithGracefulDegradation ничего не делает
func (Noop) PublishWithGracefulDegradation(context.Context, BookingEvent) {}
