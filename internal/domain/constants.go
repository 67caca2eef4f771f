package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// KPI constants
const (
	// TrendDeadband относительное изменение средней цены, ниже которого тренд stable
	TrendDeadband = 0.05
	// MaxOccupancyRate верхняя граница загрузки в процентах
	MaxOccupancyRate = 100
)

// Rack defaults
const (
	DefaultMoveSessionTTLSeconds = 300
	DefaultMaxKPIDays            = 366
)

// ActiveReservationStatuses статусы бронирований, которые занимают комнату
// Используется детектором конфликтов, поиском свободной комнаты и KPI
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusConfirmed,
	ReservationStatusPresent,
}

// InactiveReservationStatuses статусы, которые не блокируют комнату
var InactiveReservationStatuses = []ReservationStatus{
	ReservationStatusOption,
	ReservationStatusCheckedOut,
	ReservationStatusCancelled,
	ReservationStatusNoShow,
}
