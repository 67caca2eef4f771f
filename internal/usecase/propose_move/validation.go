package propose_move

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.HotelID) == "" {
		return fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ReservationID) == "" {
		return fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.TargetRoomID) == "" {
		return fmt.Errorf("%w: targetRoomId is required", ErrInvalidInput)
	}
	return nil
}
