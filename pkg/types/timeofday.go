package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// TimeOfDay время суток с точностью до минуты (минуты от полуночи)
// Не привязано ни к дате, ни к часовому поясу, поэтому два одинаковых
// значения всегда равны независимо от того, когда были распарсены
type TimeOfDay struct {
	minutes int
	valid   bool
}

// NewTimeOfDay создает время из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute, valid: true}, nil
}

// MustTimeOfDay аналог NewTimeOfDay, паникует при ошибке (для констант и тестов)
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromMinutes создает время из количества минут от полуночи
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeOfDay{minutes: minutes, valid: true}, nil
}

// TimeOfDayFromTime берет часы и минуты из time.Time (дата и секунды отбрасываются)
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// ParseTimeOfDay парсит время в формате "HH:MM" (24 часа)
// Допускается "HH:MM:SS" - секунды отбрасываются (формат TIME в PostgreSQL)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if len(parts) == 3 && !validSeconds(parts[2]) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeOfDay(hour, minute)
}

// validSeconds "00".."59"
func validSeconds(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '5' && s[1] >= '0' && s[1] <= '9'
}

// ParseClockLabel парсит время в 12-часовом формате "hh:mm AM" / "h:mm PM"
func ParseClockLabel(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	t, err := ParseTimeOfDay(fields[0])
	if err != nil {
		return TimeOfDay{}, err
	}

	hour, minute := t.Hour(), t.Minute()
	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeOfDay(hour, minute)
}

// IsZero возвращает true, если время не задано
func (t TimeOfDay) IsZero() bool {
	return !t.valid
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Hour возвращает час (0-23)
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуты (0-59)
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// AddMinutes добавляет минуты, результат должен остаться в пределах суток
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	return TimeOfDayFromMinutes(t.minutes + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если время совпадает
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes && t.valid == other.valid
}

// TruncateHour отбрасывает минуты
func (t TimeOfDay) TruncateHour() TimeOfDay {
	return TimeOfDay{minutes: t.Hour() * 60, valid: t.valid}
}

// String возвращает время в формате "HH:MM"
func (t TimeOfDay) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ClockLabel возвращает время в формате "hh:mm AM"
func (t TimeOfDay) ClockLabel() string {
	if !t.valid {
		return ""
	}
	period := "AM"
	hour := t.Hour()
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour12, t.Minute(), period)
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для колонок типа TIME
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner
// lib/pq отдает TIME как time.Time (дата 0000-01-01) или как строку
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDayFromTime(v)
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrInvalidTimeFormat, src)
	}
}
