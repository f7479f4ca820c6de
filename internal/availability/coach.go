package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/internal/domain"
)

// IsCoachAvailable проверяет доступность тренера по его недельному
// расписанию: true, если хотя бы одно повторяющееся окно на этот день недели
// полностью содержит запрошенный интервал
// (window.start <= requested.start && requested.end <= window.end).
//
// День недели считается как 0=воскресенье..6=суббота.
// Тренер без окон на этот день недели недоступен независимо от интервала.
//
// Проверка НЕ сверяется с существующими бронированиями тренера: два клиента
// могут получить одного тренера на пересекающееся время, если окно достаточно
// широкое. Кросс-проверка бронирований - точка расширения в create_booking.
func IsCoachAvailable(coachID uuid.UUID, windows []domain.CoachAvailability, date time.Time, requested domain.TimeRange) bool {
	weekday := int(date.Weekday())

	for _, w := range windows {
		if w.CoachID != coachID || w.DayOfWeek != weekday {
			continue
		}
		window := domain.TimeRange{Start: w.StartTime, End: w.EndTime}
		if window.Contains(requested) {
			return true
		}
	}

	return false
}

// WindowsForDay возвращает окна доступности тренера на день недели указанной
// даты, для отображения в ответе API
func WindowsForDay(coachID uuid.UUID, windows []domain.CoachAvailability, date time.Time) []domain.CoachAvailability {
	weekday := int(date.Weekday())

	result := make([]domain.CoachAvailability, 0)
	for _, w := range windows {
		if w.CoachID == coachID && w.DayOfWeek == weekday {
			result = append(result, w)
		}
	}
	return result
}
