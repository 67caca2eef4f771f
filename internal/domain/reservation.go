package domain

import (
	"time"

	"github.com/m04kA/SMC-RackService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusOption     ReservationStatus = "option"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusPresent    ReservationStatus = "present"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusNoShow     ReservationStatus = "no_show"
)

// Reservation represents a stay assigned to a room on the rack.
// Занимает ночи [Start, End): дата выезда не входит в интервал.
type Reservation struct {
	ID        string
	HotelID   string
	GuestName string
	Start     types.Date // Дата заезда (включительно)
	End       types.Date // Дата выезда (не включительно)
	Rate      float64
	RoomID    string
	Status    ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights between arrival and departure
func (r *Reservation) Nights() int {
	return r.Start.DaysUntil(r.End)
}

// IsActive returns true if the reservation blocks its room
// Только confirmed и present занимают комнату; option пока не блокирует
func (r *Reservation) IsActive() bool {
	for _, s := range ActiveReservationStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// SameStay returns true if both reservations occupy exactly the same nights
func (r *Reservation) SameStay(other *Reservation) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// IsValidReservationStatus проверяет, что статус бронирования известен
func IsValidReservationStatus(status ReservationStatus) bool {
	switch status {
	case ReservationStatusOption, ReservationStatusConfirmed, ReservationStatusPresent,
		ReservationStatusCheckedOut, ReservationStatusCancelled, ReservationStatusNoShow:
		return true
	default:
		return false
	}
}
