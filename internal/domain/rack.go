package domain

import "github.com/m04kA/SMC-RackService/pkg/types"

// Snapshot is the in-memory view of a hotel's rack the core works on.
// Caller guarantees both lists are already scoped to one hotel and contain no duplicate IDs.
type Snapshot struct {
	Rooms        []*Room
	Reservations []*Reservation
}

// FindRoom returns the room with the given ID or nil
func (s *Snapshot) FindRoom(id string) *Room {
	for _, room := range s.Rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// FindReservation returns the reservation with the given ID or nil
func (s *Snapshot) FindReservation(id string) *Reservation {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ConflictInfo describes what stands in the way of a drag-and-drop move
type ConflictInfo struct {
	MovingReservation       *Reservation
	TargetRoom              *Room
	ConflictingReservations []*Reservation
	// OriginOccupied is set when another active reservation shares the moving
	// reservation's room on overlapping nights, so that room cannot take a swapped guest
	OriginOccupied bool
}

// HasConflicts returns true if the move needs user confirmation
func (c *ConflictInfo) HasConflicts() bool {
	return len(c.ConflictingReservations) > 0
}

// IsSelfMove returns true if the reservation is dropped on its own room
func (c *ConflictInfo) IsSelfMove() bool {
	return c.MovingReservation.RoomID == c.TargetRoom.ID
}

// Resolution is the user's answer to a conflict
type Resolution string

const (
	ResolutionSwap     Resolution = "swap"
	ResolutionRelocate Resolution = "relocate"
	ResolutionCancel   Resolution = "cancel"
)

// IsValidResolution проверяет, что выбор пользователя известен
func IsValidResolution(r Resolution) bool {
	return r == ResolutionSwap || r == ResolutionRelocate || r == ResolutionCancel
}

// Assignment is a single room reassignment to be persisted by the booking storage
type Assignment struct {
	ReservationID string
	NewRoomID     string
}

// Trend direction of the average price compared to the previous day
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// DailyKPI is the rack header figure for one calendar day
type DailyKPI struct {
	Date          types.Date
	OccupancyRate int // 0-100
	AveragePrice  int
	Trend         Trend
	OccupiedRooms int
	TotalRooms    int
}
