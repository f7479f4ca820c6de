package domain

import "github.com/courtside/booking-service/pkg/types"

// TimeRange a half-open [Start, End) wall-clock interval within one day
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid returns true if Start is strictly before End
func (r TimeRange) IsValid() bool {
	return r.Start.IsBefore(r.End)
}

// Contains returns true if the range fully contains other
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.IsBefore(r.Start) && !r.End.IsBefore(other.End)
}

// DurationHours returns the whole-hour duration of the range.
// Slots are hour-aligned, fractional hours are not part of this domain.
func (r TimeRange) DurationHours() int {
	return r.End.Hour() - r.Start.Hour()
}

// AvailabilitySlot derived, ephemeral candidate interval for one court.
// Never persisted, recomputed from current reservations on every query.
type AvailabilitySlot struct {
	Range     TimeRange
	Available bool
}
