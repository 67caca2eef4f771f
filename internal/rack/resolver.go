package rack

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// Options возвращает варианты разрешения конфликта, которые можно предложить пользователю
// Без конфликтов вариантов нет: перенос выполняется напрямую
func Options(conflict *domain.ConflictInfo) []domain.Resolution {
	if !conflict.HasConflicts() {
		return []domain.Resolution{}
	}

	options := make([]domain.Resolution, 0, 3)
	if CanSwap(conflict) {
		options = append(options, domain.ResolutionSwap)
	}
	return append(options, domain.ResolutionRelocate, domain.ResolutionCancel)
}

// CanSwap проверяет, что конфликт можно разрешить обменом комнат:
// ровно одно конфликтующее бронирование с точно таким же [start, end),
// и в исходной комнате на эти ночи нет других активных бронирований
func CanSwap(conflict *domain.ConflictInfo) bool {
	if len(conflict.ConflictingReservations) != 1 || conflict.OriginOccupied {
		return false
	}
	return conflict.ConflictingReservations[0].SameStay(conflict.MovingReservation)
}

// Direct возвращает назначение для переноса без конфликтов
func Direct(conflict *domain.ConflictInfo) ([]domain.Assignment, error) {
	if conflict.HasConflicts() {
		return nil, fmt.Errorf("%w: %d conflicting reservations",
			ErrInvalidTransition, len(conflict.ConflictingReservations))
	}
	if conflict.IsSelfMove() {
		return []domain.Assignment{}, nil
	}
	return []domain.Assignment{{
		ReservationID: conflict.MovingReservation.ID,
		NewRoomID:     conflict.TargetRoom.ID,
	}}, nil
}

// Swap меняет комнаты переносимого и конфликтующего бронирований
func Swap(conflict *domain.ConflictInfo) ([]domain.Assignment, error) {
	if !conflict.HasConflicts() {
		return nil, ErrNoConflict
	}
	if !CanSwap(conflict) {
		return nil, ErrSwapNotAvailable
	}

	moving := conflict.MovingReservation
	other := conflict.ConflictingReservations[0]

	return []domain.Assignment{
		{ReservationID: moving.ID, NewRoomID: conflict.TargetRoom.ID},
		{ReservationID: other.ID, NewRoomID: moving.RoomID},
	}, nil
}

// Relocate переносит бронирование в целевую комнату, а вытесненные расселяет по свободным комнатам
//
// Вытесненные бронирования обрабатываются в порядке конфликта. Для каждого берется первая
// комната (по возрастанию номера), в которой нет активных бронирований на его интервал.
// Исключаются целевая комната, комнаты, уже выбранные в этой операции, и out_of_order.
// Переносимое бронирование уходит в целевую комнату, поэтому его ночи в исходной комнате
// считаются свободными.
//
// Операция атомарна: если хотя бы одно бронирование не удалось расселить,
// возвращается *NoVacantRoomError и ни одного назначения.
func Relocate(snapshot *domain.Snapshot, conflict *domain.ConflictInfo) ([]domain.Assignment, error) {
	if !conflict.HasConflicts() {
		return nil, ErrNoConflict
	}

	moving := conflict.MovingReservation
	candidates := sortedRooms(snapshot.Rooms)

	chosen := map[string]bool{conflict.TargetRoom.ID: true}
	assignments := []domain.Assignment{{ReservationID: moving.ID, NewRoomID: conflict.TargetRoom.ID}}
	var unplaced []string

	for _, displaced := range conflict.ConflictingReservations {
		room := findVacantRoom(snapshot, candidates, displaced, moving, chosen)
		if room == nil {
			unplaced = append(unplaced, displaced.ID)
			continue
		}
		chosen[room.ID] = true
		assignments = append(assignments, domain.Assignment{ReservationID: displaced.ID, NewRoomID: room.ID})
	}

	if len(unplaced) > 0 {
		return nil, &NoVacantRoomError{ReservationIDs: unplaced}
	}

	return assignments, nil
}

// findVacantRoom ищет первую комнату без активных бронирований на интервал displaced
func findVacantRoom(
	snapshot *domain.Snapshot,
	candidates []*domain.Room,
	displaced *domain.Reservation,
	moving *domain.Reservation,
	chosen map[string]bool,
) *domain.Room {
	for _, room := range candidates {
		if chosen[room.ID] || room.IsOutOfOrder() || room.ID == displaced.RoomID {
			continue
		}
		if isRoomVacant(snapshot, room.ID, displaced, moving) {
			return room
		}
	}
	return nil
}

// isRoomVacant проверяет, что в комнате нет активных бронирований, пересекающихся с r
// Бронирование leaving (если задано) не учитывается: оно покидает комнату в этой же операции.
func isRoomVacant(snapshot *domain.Snapshot, roomID string, r, leaving *domain.Reservation) bool {
	for _, other := range snapshot.Reservations {
		if other.RoomID != roomID || other.ID == r.ID || !other.IsActive() {
			continue
		}
		if leaving != nil && other.ID == leaving.ID {
			continue
		}
		if reservationsOverlap(other, r) {
			return false
		}
	}
	return true
}

// sortedRooms возвращает копию списка комнат, упорядоченную по номеру
// Числовые номера сравниваются как числа ("9" < "10"), остальные как строки, затем по ID
func sortedRooms(rooms []*domain.Room) []*domain.Room {
	sorted := make([]*domain.Room, len(rooms))
	copy(sorted, rooms)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Number != b.Number {
			return lessRoomNumber(a.Number, b.Number)
		}
		return a.ID < b.ID
	})
	return sorted
}

func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		// Числовые номера идут перед буквенными
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
