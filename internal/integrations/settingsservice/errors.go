package settingsservice

import "errors"

var (
	// ErrHotelNotFound возвращается, когда SettingsService не знает отель
	ErrHotelNotFound = errors.New("settingsservice client: hotel not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("settingsservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("settingsservice client: invalid response")
)
