package availability

import (
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// DetectConflicts находит все пары пересекающихся бронирований одной комнаты в одну дату
// Комнаты обходятся в порядке первого появления, пары (i, j) с i < j в порядке входа,
// каждая неупорядоченная пара попадает в отчет ровно один раз
func DetectConflicts(bookings []*domain.Booking) []domain.Conflict {
	var conflicts []domain.Conflict

	for _, group := range groupByRoom(bookings) {
		for i := 0; i < len(group.bookings); i++ {
			for j := i + 1; j < len(group.bookings); j++ {
				a, b := group.bookings[i], group.bookings[j]
				if a.Date != b.Date || !domain.Overlaps(a.Slot, b.Slot) {
					continue
				}
				conflicts = append(conflicts, newConflict(group.roomID, a, b))
			}
		}
	}

	return conflicts
}

// DetectConflictsSweep то же, что DetectConflicts, но за O(n log n + k log k)
// Результат совпадает с DetectConflicts полностью, включая порядок и ориентацию пар
func DetectConflictsSweep(bookings []*domain.Booking) []domain.Conflict {
	var conflicts []domain.Conflict

	for _, group := range groupByRoom(bookings) {
		var pairs [][2]int

		for _, positions := range groupByDate(group.bookings) {
			pairs = append(pairs, sweep(group.bookings, positions)...)
		}

		sort.Slice(pairs, func(x, y int) bool {
			if pairs[x][0] != pairs[y][0] {
				return pairs[x][0] < pairs[y][0]
			}
			return pairs[x][1] < pairs[y][1]
		})

		for _, p := range pairs {
			conflicts = append(conflicts, newConflict(group.roomID, group.bookings[p[0]], group.bookings[p[1]]))
		}
	}

	return conflicts
}

// sweep возвращает пары позиций (меньшая первой) пересекающихся бронирований одного дня
func sweep(bookings []*domain.Booking, positions []int) [][2]int {
	sorted := append([]int(nil), positions...)
	sort.SliceStable(sorted, func(x, y int) bool {
		return bookings[sorted[x]].Slot.Start.IsBefore(bookings[sorted[y]].Slot.Start)
	})

	var pairs [][2]int
	active := make([]int, 0, len(sorted))

	for _, cur := range sorted {
		curSlot := bookings[cur].Slot

		// Бронирования, закончившиеся до начала текущего, не пересекутся и с последующими
		kept := active[:0]
		for _, a := range active {
			if bookings[a].Slot.End.IsAfter(curSlot.Start) {
				kept = append(kept, a)
			}
		}
		active = kept

		for _, a := range active {
			if !domain.Overlaps(bookings[a].Slot, curSlot) {
				continue
			}
			if a < cur {
				pairs = append(pairs, [2]int{a, cur})
			} else {
				pairs = append(pairs, [2]int{cur, a})
			}
		}

		active = append(active, cur)
	}

	return pairs
}

type roomGroup struct {
	roomID   string
	bookings []*domain.Booking
}

func groupByRoom(bookings []*domain.Booking) []*roomGroup {
	var groups []*roomGroup
	byID := make(map[string]*roomGroup)

	for _, b := range bookings {
		if b == nil {
			continue
		}
		g, ok := byID[b.RoomID]
		if !ok {
			g = &roomGroup{roomID: b.RoomID}
			byID[b.RoomID] = g
			groups = append(groups, g)
		}
		g.bookings = append(g.bookings, b)
	}

	return groups
}

func groupByDate(bookings []*domain.Booking) map[types.Date][]int {
	byDate := make(map[types.Date][]int)
	for i, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], i)
	}
	return byDate
}

func newConflict(roomID string, a, b *domain.Booking) domain.Conflict {
	return domain.Conflict{
		RoomID:         roomID,
		Booking1:       a,
		Booking2:       b,
		Classification: domain.ClassifyConflict(a, b),
	}
}
