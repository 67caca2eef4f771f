package rack

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// DetectConflicts находит бронирования, которые мешают перенести movingID в комнату targetRoomID
//
// Конфликтом считается каждое активное бронирование (кроме переносимого) в целевой комнате,
// интервал которого пересекается с интервалом переносимого. Результат упорядочен по дате заезда,
// затем по ID. Пустой список означает, что перенос выполняется напрямую.
//
// Перенос бронирования в его же комнату никогда не конфликтует.
func DetectConflicts(snapshot *domain.Snapshot, movingID string, targetRoomID string) (*domain.ConflictInfo, error) {
	moving := snapshot.FindReservation(movingID)
	if moving == nil {
		return nil, fmt.Errorf("%w: reservation %q not found", ErrInvalidInput, movingID)
	}

	target := snapshot.FindRoom(targetRoomID)
	if target == nil {
		return nil, fmt.Errorf("%w: room %q not found", ErrInvalidInput, targetRoomID)
	}

	if !moving.Start.Before(moving.End) {
		return nil, fmt.Errorf("%w: reservation %q has empty stay %s..%s",
			ErrInvalidInput, movingID, moving.Start, moving.End)
	}

	info := &domain.ConflictInfo{
		MovingReservation:       moving,
		TargetRoom:              target,
		ConflictingReservations: []*domain.Reservation{},
	}

	if info.IsSelfMove() {
		return info, nil
	}

	info.OriginOccupied = !isRoomVacant(snapshot, moving.RoomID, moving, nil)

	for _, r := range snapshot.Reservations {
		if r.ID == moving.ID || r.RoomID != target.ID || !r.IsActive() {
			continue
		}
		if reservationsOverlap(r, moving) {
			info.ConflictingReservations = append(info.ConflictingReservations, r)
		}
	}

	sortByStay(info.ConflictingReservations)

	return info, nil
}

// sortByStay сортирует бронирования по дате заезда, затем по ID
func sortByStay(reservations []*domain.Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})
}
