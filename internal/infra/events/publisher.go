package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/courtside/booking-service/internal/domain"
)

// Routing keys доменных событий бронирований
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingEvent - полезная нагрузка события бронирования
type BookingEvent struct {
	BookingID   uuid.UUID  `json:"bookingId"`
	UserID      int64      `json:"userId"`
	CourtID     uuid.UUID  `json:"courtId"`
	CoachID     *uuid.UUID `json:"coachId,omitempty"`
	BookingDate string     `json:"bookingDate"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Status      string     `json:"status"`
	TotalPrice  int64      `json:"totalPrice"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// Publisher публикует доменные события бронирований в topic exchange.
// Потребители (уведомления, аналитика) подписываются по routing key.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   Logger
}

// NewPublisher подключается к брокеру и декларирует exchange
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnect, url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// BookingCreated публикует событие создания бронирования
func (p *Publisher) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, KeyBookingCreated, newBookingEvent(booking))
}

// BookingCancelled публикует событие отмены бронирования
func (p *Publisher) BookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, KeyBookingCancelled, newBookingEvent(booking))
}

func (p *Publisher) publish(ctx context.Context, key string, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, key, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, key, err)
	}

	p.logger.Info("Event published: key=%s, booking_id=%s", key, event.BookingID)
	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func newBookingEvent(booking *domain.Booking) BookingEvent {
	return BookingEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		CourtID:     booking.CourtID,
		CoachID:     booking.CoachID,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		StartTime:   booking.StartTime.String(),
		EndTime:     booking.EndTime.String(),
		Status:      string(booking.Status),
		TotalPrice:  int64(booking.TotalPrice),
		OccurredAt:  time.Now().UTC(),
	}
}
