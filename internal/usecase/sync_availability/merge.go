package sync_availability

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// bookedSlot занятый слот LibCal, сопоставленный с комнатой
type bookedSlot struct {
	roomID string
	itemID int64
	date   types.Date
	slot   domain.TimeSlot
}

type roomDate struct {
	roomID string
	date   types.Date
}

// mergeSlots склеивает смежные и пересекающиеся слоты одной комнаты в один день
// Группы идут в порядке первого появления, внутри группы слоты по началу
func mergeSlots(slots []bookedSlot) []bookedSlot {
	var order []roomDate
	groups := make(map[roomDate][]bookedSlot)
	for _, s := range slots {
		key := roomDate{roomID: s.roomID, date: s.date}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	merged := make([]bookedSlot, 0, len(slots))
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].slot.Start.IsBefore(group[j].slot.Start)
		})

		cur := group[0]
		for _, next := range group[1:] {
			if !next.slot.Start.IsAfter(cur.slot.End) {
				if next.slot.End.IsAfter(cur.slot.End) {
					cur.slot.End = next.slot.End
				}
				continue
			}
			merged = append(merged, cur)
			cur = next
		}
		merged = append(merged, cur)
	}

	return merged
}

// externalID ключ импортированного бронирования: item и начало первого слота
func externalID(s bookedSlot) string {
	return fmt.Sprintf("%s:%s %s", strconv.FormatInt(s.itemID, 10), s.date, s.slot.Start)
}
