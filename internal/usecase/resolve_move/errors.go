package resolve_move

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownChoice возвращается при неизвестном варианте разрешения
	ErrUnknownChoice = errors.New("choice must be one of swap, relocate, cancel")

	// ErrMoveNotFound возвращается, когда перенос не найден или истек
	ErrMoveNotFound = errors.New("move not found")

	// ErrResolutionInProgress возвращается, когда выбор по переносу уже обрабатывается
	ErrResolutionInProgress = errors.New("resolution already in progress")

	// ErrNoVacantRoom возвращается, когда вытесняемым бронированиям не хватило свободных комнат
	// Перенос остается в ожидании выбора
	ErrNoVacantRoom = errors.New("no vacant room for displaced reservations")

	// ErrSwapNotAvailable возвращается, когда обмен комнатами больше не возможен
	ErrSwapNotAvailable = errors.New("swap is not available for this conflict")

	// ErrStaleSnapshot возвращается, когда шахматка изменилась во время применения
	ErrStaleSnapshot = errors.New("rack has changed, please retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
