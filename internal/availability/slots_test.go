package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	"github.com/courtside/booking-service/pkg/types"
)

var testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

func booking(courtID uuid.UUID, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		CourtID:     courtID,
		BookingDate: testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestComputeCourtSlots_EmptyDay(t *testing.T) {
	courtID := uuid.New()

	slots := ComputeCourtSlots(courtID, testDate, nil)

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("06:00"), slots[0].Range.Start)
	assert.Equal(t, types.TimeString("07:00"), slots[0].Range.End)
	assert.Equal(t, types.TimeString("21:00"), slots[15].Range.Start)
	assert.Equal(t, types.TimeString("22:00"), slots[15].Range.End)

	for i, s := range slots {
		assert.True(t, s.Available, "slot %d should be free", i)
		if i > 0 {
			assert.Equal(t, slots[i-1].Range.End, s.Range.Start, "slots must be contiguous")
		}
	}
}

func TestComputeCourtSlots_SingleHourBooking(t *testing.T) {
	courtID := uuid.New()
	bookings := []*domain.Booking{
		booking(courtID, "14:00", "15:00", domain.StatusConfirmed),
	}

	slots := ComputeCourtSlots(courtID, testDate, bookings)

	require.Len(t, slots, 16)
	for _, s := range slots {
		if s.Range.Start == types.TimeString("14:00") {
			assert.False(t, s.Available, "14:00 slot must be booked")
		} else {
			assert.True(t, s.Available, "slot %s should be free", s.Range.Start)
		}
	}
}

func TestComputeCourtSlots_MultiHourBooking(t *testing.T) {
	courtID := uuid.New()
	bookings := []*domain.Booking{
		booking(courtID, "09:00", "12:00", domain.StatusPending),
	}

	slots := ComputeCourtSlots(courtID, testDate, bookings)

	blocked := map[types.TimeString]bool{"09:00": true, "10:00": true, "11:00": true}
	for _, s := range slots {
		assert.Equal(t, !blocked[s.Range.Start], s.Available, "slot %s", s.Range.Start)
	}
}

func TestComputeCourtSlots_CancelledBookingFreed(t *testing.T) {
	courtID := uuid.New()
	bookings := []*domain.Booking{
		booking(courtID, "14:00", "16:00", domain.StatusCancelled),
	}

	slots := ComputeCourtSlots(courtID, testDate, bookings)

	for _, s := range slots {
		assert.True(t, s.Available, "cancelled booking must not block slot %s", s.Range.Start)
	}
}

func TestComputeCourtSlots_OtherCourtIgnored(t *testing.T) {
	courtID := uuid.New()
	otherCourt := uuid.New()
	bookings := []*domain.Booking{
		booking(otherCourt, "14:00", "16:00", domain.StatusConfirmed),
	}

	slots := ComputeCourtSlots(courtID, testDate, bookings)

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestComputeCourtSlots_OtherDateIgnored(t *testing.T) {
	courtID := uuid.New()
	b := booking(courtID, "14:00", "16:00", domain.StatusConfirmed)
	b.BookingDate = testDate.AddDate(0, 0, 1)

	slots := ComputeCourtSlots(courtID, testDate, []*domain.Booking{b})

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestComputeCourtSlots_CompletedStillBlocks(t *testing.T) {
	courtID := uuid.New()
	bookings := []*domain.Booking{
		booking(courtID, "06:00", "07:00", domain.StatusCompleted),
	}

	slots := ComputeCourtSlots(courtID, testDate, bookings)

	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}
