package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/courtside/booking-service/pkg/types"
)

// Request модель запроса на получение сетки слотов корта
type Request struct {
	CourtID uuid.UUID // ID корта
	Date    time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Response модель ответа с сеткой слотов рабочего дня
type Response struct {
	CourtID uuid.UUID // ID корта
	Date    time.Time // Дата запроса
	Slots   []Slot    // Все слоты рабочего дня с 06:00 до 22:00
}

// Slot модель часового слота
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "14:00"
	EndTime   types.TimeString // Время конца слота, например "15:00"
	Available bool             // Свободен ли слот
}
