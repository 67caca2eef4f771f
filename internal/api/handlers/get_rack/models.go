package get_rack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

var errInvalidPeriod = errors.New("from must not be after to")

// RackQuery разобранные query параметры
type RackQuery struct {
	From            types.Date
	To              types.Date
	IncludeInactive bool
}

type RackResponse struct {
	HotelID      string                         `json:"hotelId"`
	From         types.Date                     `json:"from"`
	To           types.Date                     `json:"to"`
	Rooms        []handlers.RoomResponse        `json:"rooms"`
	Reservations []handlers.ReservationResponse `json:"reservations"`
}

// ParseQuery разбирает from, to (обязательные) и includeInactive (по умолчанию false)
func ParseQuery(fromStr, toStr, includeInactiveStr string) (*RackQuery, error) {
	from, err := types.NewDateFromString(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := types.NewDateFromString(toStr)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, errInvalidPeriod
	}

	q := &RackQuery{From: from, To: to}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		q.IncludeInactive = includeInactive
	}

	return q, nil
}

func FromSnapshot(hotelID string, q *RackQuery, snap *domain.Snapshot) *RackResponse {
	rooms := make([]handlers.RoomResponse, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		rooms = append(rooms, handlers.FromDomainRoom(room))
	}

	reservations := make([]handlers.ReservationResponse, 0, len(snap.Reservations))
	for _, r := range snap.Reservations {
		if !q.IncludeInactive && !r.IsActive() {
			continue
		}
		reservations = append(reservations, handlers.FromDomainReservation(r))
	}

	return &RackResponse{
		HotelID:      hotelID,
		From:         q.From,
		To:           q.To,
		Rooms:        rooms,
		Reservations: reservations,
	}
}
