package sync_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ImportedOrganization организация импортированных бронирований: LibCal не отдает владельца
const ImportedOrganization = "LibCal Reservation"

// Config параметры синхронизации
type Config struct {
	WindowDays int               // сколько дней, начиная с сегодня
	Items      map[string]string // itemId LibCal -> ID комнаты
	Location   *time.Location    // часовой пояс кампуса
}

// Request модель запроса синхронизации
type Request struct {
	From types.Date // пусто - сегодня
}

// Response итоги синхронизации
type Response struct {
	From              types.Date
	To                types.Date // включительно
	SlotsReceived     int
	BookedSlots       int
	SkippedUnmapped   int
	Imported          int64
	SkippedDuplicates int64 // слот уже записан из LibCal в этом же окне
	Deleted           int64
}
