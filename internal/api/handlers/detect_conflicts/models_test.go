package detect_conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	detectConflicts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/detect_conflicts"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest("2025-10-01", "", "")
	require.NoError(t, err)
	assert.Equal(t, req.From, req.To)

	req, err = ToUseCaseRequest("", "2025-10-01", "2025-10-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-07", req.To.String())

	_, err = ToUseCaseRequest("", "oct 1", "")
	assert.Error(t, err)
}

func TestFromUseCaseResponse(t *testing.T) {
	day := types.NewDate(2025, time.October, 1)
	slot, _ := domain.ParseTimeSlot("10:00", "11:00")
	b1 := &domain.Booking{ID: "b1", RoomID: "lib-305", Date: day, Slot: slot, Source: domain.SourceLocal}
	b2 := &domain.Booking{ID: "b2", RoomID: "lib-305", Date: day, Slot: slot, Source: domain.SourceLibCal}

	out := FromUseCaseResponse(&detectConflicts.Response{
		From: day, To: day, Total: 1, CrossSystem: 1,
		Conflicts: []detectConflicts.ConflictReport{{
			Room:           &domain.Room{ID: "lib-305", Name: "LIB 305", Building: "Library"},
			RoomID:         "lib-305",
			Date:           day,
			Booking1:       b1,
			Booking2:       b2,
			Classification: domain.CrossSystem,
		}},
	})

	require.Len(t, out.Conflicts, 1)
	assert.Equal(t, "Cross-System Conflict", out.Conflicts[0].Type)
	assert.Equal(t, "LIB 305", out.Conflicts[0].RoomName)
	assert.Nil(t, out.Conflicts[0].Suggestion)
}
