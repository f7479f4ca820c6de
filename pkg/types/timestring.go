package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString хранит время внутри дня в формате "HH:MM"
// Используется для времени начала/конца слотов и окон доступности тренеров
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
// Также принимает "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) >= 8 {
		if t, err := time.Parse("15:04:05", s[:8]); err == nil {
			return NewTimeString(t), nil
		}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromHour создает TimeString для начала часа (например, 14 -> "14:00")
func NewTimeStringFromHour(hour int) (TimeString, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: hour %d out of range", ErrInvalidTimeString, hour)
	}
	return TimeString(fmt.Sprintf("%02d:00", hour)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат времени
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// TotalMinutes возвращает количество минут с начала дня
func (ts TimeString) TotalMinutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Hour возвращает часовую компоненту (0-23)
// Для некорректного значения возвращает -1
func (ts TimeString) Hour() int {
	minutes, err := ts.TotalMinutes()
	if err != nil {
		return -1
	}
	return minutes / 60
}

// AddMinutes возвращает время, сдвинутое на m минут вперед
// Результат обрезается границей суток (24:00 недопустимо в TimeString,
// поэтому "23:30" + 60 вернет ошибку)
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := ts.TotalMinutes()
	if err != nil {
		return "", err
	}
	total := minutes + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Scan реализует sql.Scanner (колонки TIME приходят как time.Time, []byte или string)
func (ts *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, value)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}
