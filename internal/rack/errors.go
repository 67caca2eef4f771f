package rack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается, когда бронирование или целевая комната отсутствуют в снимке
	ErrInvalidInput = errors.New("rack: invalid input")

	// ErrNoVacantRoom возвращается, когда для вытесняемого бронирования не нашлось свободной комнаты
	ErrNoVacantRoom = errors.New("rack: no vacant room found")

	// ErrSwapNotAvailable возвращается при попытке обмена, когда обмен не предлагался
	ErrSwapNotAvailable = errors.New("rack: swap is not available for this conflict")

	// ErrNoConflict возвращается при попытке разрешить конфликт, которого нет
	ErrNoConflict = errors.New("rack: move has no conflict to resolve")

	// ErrResolutionInProgress возвращается при повторном входе в Resolving
	ErrResolutionInProgress = errors.New("rack: resolution already in progress")

	// ErrInvalidTransition возвращается при недопустимом переходе машины состояний
	ErrInvalidTransition = errors.New("rack: invalid state transition")

	// ErrUnknownResolution возвращается при неизвестном выборе пользователя
	ErrUnknownResolution = errors.New("rack: unknown resolution")
)

// NoVacantRoomError перечисляет бронирования, которые не удалось переселить
type NoVacantRoomError struct {
	ReservationIDs []string
}

func (e *NoVacantRoomError) Error() string {
	return fmt.Sprintf("%v: reservations %s", ErrNoVacantRoom, strings.Join(e.ReservationIDs, ", "))
}

func (e *NoVacantRoomError) Unwrap() error {
	return ErrNoVacantRoom
}
