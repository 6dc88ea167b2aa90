package sync_libcal

import (
	syncAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/sync_availability"
)

// SyncResponse HTTP модель итогов синхронизации
type SyncResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	SlotsReceived   int    `json:"slotsReceived"`
	BookedSlots     int    `json:"bookedSlots"`
	SkippedUnmapped int    `json:"skippedUnmapped"`
	Imported        int64  `json:"imported"`
	Duplicates      int64  `json:"duplicates"`
	Deleted         int64  `json:"deleted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncAvailability.Response) *SyncResponse {
	return &SyncResponse{
		From:            resp.From.String(),
		To:              resp.To.String(),
		SlotsReceived:   resp.SlotsReceived,
		BookedSlots:     resp.BookedSlots,
		SkippedUnmapped: resp.SkippedUnmapped,
		Imported:        resp.Imported,
		Duplicates:      resp.SkippedDuplicates,
		Deleted:         resp.Deleted,
	}
}
