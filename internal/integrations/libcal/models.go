package libcal

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// slotTimeLayout формат времени в ответе LibCal: "2026-02-21 17:00:00"
const slotTimeLayout = "2006-01-02 15:04:05"

// GridResponse ответ /spaces/availability/grid
type GridResponse struct {
	Slots []Slot `json:"slots"`
}

// Slot ячейка сетки LibCal
// Свободные слоты приходят без className, занятые помечены классом (например "s-lc-eq-checkout")
type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	ItemID    int64  `json:"itemId"`
	Checksum  string `json:"checksum,omitempty"`
	ClassName string `json:"className,omitempty"`
}

// IsBooked возвращает true, если слот занят в LibCal
func (s Slot) IsBooked() bool {
	return strings.TrimSpace(s.ClassName) != ""
}

// Parse разбирает начало и конец слота в дату и время суток
// Конец в 00:00 следующего дня возвращается как 23:59 того же дня
func (s Slot) Parse() (types.Date, types.TimeOfDay, types.TimeOfDay, error) {
	start, err := time.Parse(slotTimeLayout, s.Start)
	if err != nil {
		return types.Date{}, types.TimeOfDay{}, types.TimeOfDay{}, fmt.Errorf("%w: slot start %q", ErrInvalidResponse, s.Start)
	}
	end, err := time.Parse(slotTimeLayout, s.End)
	if err != nil {
		return types.Date{}, types.TimeOfDay{}, types.TimeOfDay{}, fmt.Errorf("%w: slot end %q", ErrInvalidResponse, s.End)
	}

	date := types.DateOf(start)
	endTime := types.TimeOfDayFromTime(end)
	if types.DateOf(end).After(date) {
		endTime = types.MustTimeOfDay(23, 59)
	}

	return date, types.TimeOfDayFromTime(start), endTime, nil
}
