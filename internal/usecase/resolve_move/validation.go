package resolve_move

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает выбор пользователя
func validateRequest(req *Request) (domain.Resolution, error) {
	if strings.TrimSpace(req.HotelID) == "" {
		return "", fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.MoveID) == "" {
		return "", fmt.Errorf("%w: moveId is required", ErrInvalidInput)
	}

	choice := domain.Resolution(strings.ToLower(strings.TrimSpace(req.Choice)))
	if !domain.IsValidResolution(choice) {
		return "", fmt.Errorf("%w: got %q", ErrUnknownChoice, req.Choice)
	}
	return choice, nil
}
