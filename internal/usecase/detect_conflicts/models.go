package detect_conflicts

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса: одна дата (From == To) или диапазон включительно
type Request struct {
	From types.Date
	To   types.Date
}

// Response отчет о конфликтах
type Response struct {
	From        types.Date
	To          types.Date
	Conflicts   []ConflictReport
	Total       int
	CrossSystem int
	SameSystem  int
}

// ConflictReport конфликт с подобранной альтернативой
type ConflictReport struct {
	Room           *domain.Room // nil, если комнаты нет в каталоге
	RoomID         string
	Date           types.Date
	Booking1       *domain.Booking
	Booking2       *domain.Booking
	Classification domain.ConflictClassification
	Suggestion     *domain.Room // свободная комната на слот Booking1, nil если нет
}
