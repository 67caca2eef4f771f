package propose_move

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе когда бронирования или комнаты нет в шахматке отеля)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrMoveInProgress возвращается, когда бронирование или комната уже участвуют в переносе
	ErrMoveInProgress = errors.New("another move is pending for this reservation or room")

	// ErrStaleSnapshot возвращается, когда шахматка изменилась во время применения переноса
	ErrStaleSnapshot = errors.New("rack has changed, please retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
