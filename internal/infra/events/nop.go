package events

import (
	"context"

	"github.com/courtside/booking-service/internal/domain"
)

// NopPublisher используется, когда публикация событий выключена в конфиге
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	return nil
}

func (NopPublisher) BookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return nil
}
