package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		UserID:        7,
		RoomID:        3,
		CheckIn:       types.MustParseDate("2025-01-20"),
		CheckOut:      types.MustParseDate("2025-01-22"),
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		TotalPrice:    decimal.RequireFromString("800000"),
	}
}

func TestClient_Publish(t *testing.T) {
	ch := &fakeChannel{}
	c := newClient(ch, "hotel.bookings", time.Second, nopLogger{})

	at := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	err := c.Publish(context.Background(), NewBookingEvent(EventBookingCreated, sampleBooking(), at))
	require.NoError(t, err)

	assert.Equal(t, "hotel.bookings", ch.exchange)
	assert.Equal(t, EventBookingCreated, ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(ch.msg.Body, &payload))
	assert.Equal(t, "booking.created", payload["type"])
	assert.Equal(t, float64(42), payload["booking_id"])
	assert.Equal(t, "2025-01-20", payload["check_in"])
	assert.Equal(t, "800000", payload["total_price"])
}

func TestClient_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	c := newClient(ch, "hotel.bookings", 0, nopLogger{})

	err := c.Publish(context.Background(), NewBookingEvent(EventBookingPaid, sampleBooking(), time.Now()))
	assert.ErrorIs(t, err, ErrPublish)

	// Не паникует и не возвращает ошибку
	c.PublishWithGracefulDegradation(context.Background(), NewBookingEvent(EventBookingPaid, sampleBooking(), time.Now()))
}

func TestClient_Close(t *testing.T) {
	ch := &fakeChannel{}
	c := newClient(ch, "x", 0, nopLogger{})

	require.NoError(t, c.Close())
	assert.True(t, ch.closed)
}
