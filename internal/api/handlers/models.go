package handlers

import (
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// Общие модели шахматки для ответов нескольких handlers

type RoomResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type ReservationResponse struct {
	ID        string     `json:"id"`
	GuestName string     `json:"guestName"`
	Start     types.Date `json:"start"`
	End       types.Date `json:"end"`
	Nights    int        `json:"nights"`
	Rate      float64    `json:"rate"`
	RoomID    string     `json:"roomId"`
	Status    string     `json:"status"`
}

type ConflictResponse struct {
	MovingReservation       ReservationResponse   `json:"movingReservation"`
	TargetRoom              RoomResponse          `json:"targetRoom"`
	ConflictingReservations []ReservationResponse `json:"conflictingReservations"`
}

type AssignmentResponse struct {
	ReservationID string `json:"reservationId"`
	NewRoomID     string `json:"newRoomId"`
}

func FromDomainRoom(room *domain.Room) RoomResponse {
	return RoomResponse{
		ID:     room.ID,
		Number: room.Number,
		Type:   room.Type,
		Status: string(room.Status),
	}
}

func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		GuestName: r.GuestName,
		Start:     r.Start,
		End:       r.End,
		Nights:    r.Nights(),
		Rate:      r.Rate,
		RoomID:    r.RoomID,
		Status:    string(r.Status),
	}
}

// FromDomainConflict возвращает nil для nil конфликта
func FromDomainConflict(c *domain.ConflictInfo) *ConflictResponse {
	if c == nil {
		return nil
	}

	conflicting := make([]ReservationResponse, 0, len(c.ConflictingReservations))
	for _, r := range c.ConflictingReservations {
		conflicting = append(conflicting, FromDomainReservation(r))
	}

	return &ConflictResponse{
		MovingReservation:       FromDomainReservation(c.MovingReservation),
		TargetRoom:              FromDomainRoom(c.TargetRoom),
		ConflictingReservations: conflicting,
	}
}

func FromDomainAssignments(assignments []domain.Assignment) []AssignmentResponse {
	result := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, AssignmentResponse{
			ReservationID: a.ReservationID,
			NewRoomID:     a.NewRoomID,
		})
	}
	return result
}

func FromDomainResolutions(options []domain.Resolution) []string {
	result := make([]string, 0, len(options))
	for _, o := range options {
		result = append(result, string(o))
	}
	return result
}
