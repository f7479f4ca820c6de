// Package availability derives bookable time slots and coach availability
// from caller-supplied reservation snapshots. All functions are pure:
// no I/O, no mutation, recomputed fresh on every call.
package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/types"
)

// ComputeCourtSlots генерирует слоты корта на день: по одному слоту на каждый
// целый час внутри рабочего окна (OpeningHour включительно, ClosingHour
// исключительно), по возрастанию времени начала.
//
// Слот недоступен, если начало слота попадает внутрь неотмененного
// бронирования этого корта на эту дату: booking.start <= slot.start < booking.end.
// Бронирования выровнены по часам и не пересекаются между собой по построению
// (это гарантирует workflow создания, а не resolver).
func ComputeCourtSlots(courtID uuid.UUID, date time.Time, bookings []*domain.Booking) []domain.AvailabilitySlot {
	occupied := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.CourtID != courtID {
			continue
		}
		if !isSameDay(b.BookingDate, date) {
			continue
		}
		if !b.OccupiesSlot() {
			continue
		}
		occupied = append(occupied, b)
	}

	slots := make([]domain.AvailabilitySlot, 0, domain.ClosingHour-domain.OpeningHour)
	for hour := domain.OpeningHour; hour < domain.ClosingHour; hour++ {
		slotRange := hourRange(hour)

		booked := false
		for _, b := range occupied {
			// slot.start внутри [booking.start, booking.end)
			if !slotRange.Start.IsBefore(b.StartTime) && slotRange.Start.IsBefore(b.EndTime) {
				booked = true
				break
			}
		}

		slots = append(slots, domain.AvailabilitySlot{
			Range:     slotRange,
			Available: !booked,
		})
	}

	return slots
}

// hourRange возвращает часовой интервал [hour:00, hour+1:00)
func hourRange(hour int) domain.TimeRange {
	return domain.TimeRange{
		Start: types.TimeString(fmt.Sprintf("%02d:00", hour)),
		End:   types.TimeString(fmt.Sprintf("%02d:00", hour+1)),
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
