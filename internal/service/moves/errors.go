package moves

import "errors"

var (
	// ErrMoveNotFound возвращается, когда перенос не найден или истек
	ErrMoveNotFound = errors.New("moves: move not found")

	// ErrMoveInProgress возвращается, когда бронирование или комната уже участвуют в ожидающем переносе
	ErrMoveInProgress = errors.New("moves: another move is pending for this reservation or room")

	// ErrMoveBusy возвращается, когда выбор по переносу уже обрабатывается
	ErrMoveBusy = errors.New("moves: move is being resolved")
)
