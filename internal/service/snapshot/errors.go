package snapshot

import "errors"

var (
	// ErrReservationNotFound возвращается, когда переносимое бронирование не найдено
	ErrReservationNotFound = errors.New("snapshot: reservation not found")

	// ErrHotelNotFound возвращается, когда источник комнат не знает отель
	ErrHotelNotFound = errors.New("snapshot: hotel not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("snapshot: internal error")
)
