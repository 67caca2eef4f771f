package get_rack_kpis

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateRange возвращается, когда from позже to или даты не в формате YYYY-MM-DD
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrRangeTooLong возвращается, когда период длиннее допустимого
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
