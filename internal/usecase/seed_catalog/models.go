package seed_catalog

// RoomRecord запись rooms.json
type RoomRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Building string   `json:"building"`
	Capacity int      `json:"capacity"`
	Type     string   `json:"type"`
	Features []string `json:"features"`
}

// ReservationRecord запись reservations.json
type ReservationRecord struct {
	RoomID       string `json:"roomId"`
	Date         string `json:"date"`      // YYYY-MM-DD
	TimeSlot     string `json:"time_slot"` // "10:00 AM - 12:00 PM"
	Organization string `json:"organization"`
	Status       string `json:"status"`
	SystemSource string `json:"system_source"`
}

// Request модель запроса на загрузку каталога
type Request struct {
	Rooms        []RoomRecord
	Reservations []ReservationRecord
}

// Response итоги загрузки
type Response struct {
	Rooms      int // комнат записано
	Bookings   int // бронирований создано
	Duplicates int // слот уже был записан
	Skipped    int // некорректные или неактивные записи
}
