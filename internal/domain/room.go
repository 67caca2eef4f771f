package domain

// RoomStatus represents the housekeeping status of a room
type RoomStatus string

const (
	RoomStatusClean       RoomStatus = "clean"
	RoomStatusInspected   RoomStatus = "inspected"
	RoomStatusDirty       RoomStatus = "dirty"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusOutOfOrder  RoomStatus = "out_of_order"
	RoomStatusFictive     RoomStatus = "fictive"
)

// Room represents a physical (or fictive) room on the rack.
// Rooms are maintained by the settings service, the rack only reads them.
type Room struct {
	ID      string
	HotelID string
	Number  string // Отображаемый номер комнаты ("101", "2A")
	Type    string // Код типа комнаты
	Status  RoomStatus
}

// IsOutOfOrder returns true if the room is excluded from sale
func (r *Room) IsOutOfOrder() bool {
	return r.Status == RoomStatusOutOfOrder
}

// CountsForCapacity returns true if the room counts towards occupancy capacity
func (r *Room) CountsForCapacity() bool {
	return !r.IsOutOfOrder()
}

// IsValidRoomStatus проверяет, что статус комнаты известен
func IsValidRoomStatus(status RoomStatus) bool {
	switch status {
	case RoomStatusClean, RoomStatusInspected, RoomStatusDirty,
		RoomStatusMaintenance, RoomStatusOutOfOrder, RoomStatusFictive:
		return true
	default:
		return false
	}
}
