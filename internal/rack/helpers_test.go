package rack

import (
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

func room(id, number string) *domain.Room {
	return &domain.Room{ID: id, HotelID: "h1", Number: number, Type: "DBL", Status: domain.RoomStatusClean}
}

func roomWithStatus(id, number string, status domain.RoomStatus) *domain.Room {
	r := room(id, number)
	r.Status = status
	return r
}

func reservation(id, roomID, start, end string, rate float64) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		HotelID:   "h1",
		GuestName: "Guest " + id,
		Start:     types.MustDate(start),
		End:       types.MustDate(end),
		Rate:      rate,
		RoomID:    roomID,
		Status:    domain.ReservationStatusConfirmed,
	}
}

func withStatus(r *domain.Reservation, status domain.ReservationStatus) *domain.Reservation {
	r.Status = status
	return r
}

func snapshot(rooms []*domain.Room, reservations ...*domain.Reservation) *domain.Snapshot {
	return &domain.Snapshot{Rooms: rooms, Reservations: reservations}
}

func ids(reservations []*domain.Reservation) []string {
	out := make([]string, len(reservations))
	for i, r := range reservations {
		out[i] = r.ID
	}
	return out
}
