package domain

// Operating window of the club: court slots are generated from OpeningHour
// (inclusive) to ClosingHour (exclusive), one slot per whole hour.
const (
	OpeningHour = 6  // 06:00
	ClosingHour = 22 // 22:00
)

// SlotDurationMinutes длительность одного слота корта
const SlotDurationMinutes = 60

// Business validation constants
const (
	MinBookingDurationHours = 1
	MaxBookingDurationHours = ClosingHour - OpeningHour
	MaxNotesLength          = 500
	MaxCustomerNameLength   = 200
	MaxRecentBookingsLimit  = 200
	DefaultRecentBookings   = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот
// Используется при подсчете конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
