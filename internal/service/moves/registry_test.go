package moves

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/rack"
	"github.com/m04kA/SMC-RackService/pkg/logger"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

type fakeMetrics struct {
	pending int
}

func (f *fakeMetrics) SetPendingMoves(n int) {
	f.pending = n
}

func conflictSnapshot() *domain.Snapshot {
	stay := func(id, room string) *domain.Reservation {
		return &domain.Reservation{
			ID:     id,
			RoomID: room,
			Start:  types.MustDate("2024-01-05"),
			End:    types.MustDate("2024-01-10"),
			Status: domain.ReservationStatusConfirmed,
		}
	}
	return &domain.Snapshot{
		Rooms: []*domain.Room{
			{ID: "R1", Number: "101", Status: domain.RoomStatusClean},
			{ID: "R2", Number: "102", Status: domain.RoomStatusClean},
			{ID: "R3", Number: "103", Status: domain.RoomStatusClean},
		},
		Reservations: []*domain.Reservation{stay("A", "R1"), stay("B", "R2")},
	}
}

func pendingSession(t *testing.T, reservationID, roomID string) *rack.Session {
	session := rack.NewSession()
	plan, err := session.Propose(conflictSnapshot(), reservationID, roomID)
	require.NoError(t, err)
	require.Nil(t, plan)
	require.Equal(t, rack.StateAwaitingUserChoice, session.State())
	return session
}

func newRegistry(clock *fakeTime, m MetricsRecorder) *Registry {
	return NewRegistry(time.Minute, clock, m, logger.NewNop())
}

func TestRegistry_OpenLocksReservationAndRoom(t *testing.T) {
	clock := &fakeTime{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	m := &fakeMetrics{}
	reg := newRegistry(clock, m)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)
	assert.NotEmpty(t, move.ID)
	assert.Equal(t, 1, m.pending)

	assert.True(t, reg.IsBusy("H1", "A", "R9"))
	assert.True(t, reg.IsBusy("H1", "Z", "R2"))
	assert.False(t, reg.IsBusy("H2", "A", "R2"))

	_, err = reg.Open("H1", pendingSession(t, "B", "R1"))
	require.NoError(t, err, "different reservation and room")

	_, err = reg.Open("H1", pendingSession(t, "A", "R2"))
	assert.ErrorIs(t, err, ErrMoveInProgress)
}

func TestRegistry_AcquireIsExclusive(t *testing.T) {
	clock := &fakeTime{now: time.Now()}
	reg := newRegistry(clock, nil)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	_, release, err := reg.Acquire("H1", move.ID)
	require.NoError(t, err)

	_, _, err = reg.Acquire("H1", move.ID)
	assert.ErrorIs(t, err, ErrMoveBusy)

	release()
	_, release2, err := reg.Acquire("H1", move.ID)
	require.NoError(t, err)
	release2()
}

func TestRegistry_ScopedByHotel(t *testing.T) {
	reg := newRegistry(&fakeTime{now: time.Now()}, nil)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	_, _, err = reg.Acquire("H2", move.ID)
	assert.ErrorIs(t, err, ErrMoveNotFound)

	err = reg.View("H2", move.ID, func(*Move) {})
	assert.ErrorIs(t, err, ErrMoveNotFound)
}

func TestRegistry_CloseReleasesLocks(t *testing.T) {
	m := &fakeMetrics{}
	reg := newRegistry(&fakeTime{now: time.Now()}, m)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	reg.Close(move.ID)

	assert.False(t, reg.IsBusy("H1", "A", "R2"))
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 0, m.pending)

	err = reg.View("H1", move.ID, func(*Move) {})
	assert.ErrorIs(t, err, ErrMoveNotFound)
}

func TestRegistry_Expiry(t *testing.T) {
	clock := &fakeTime{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	reg := newRegistry(clock, nil)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	clock.now = clock.now.Add(50 * time.Second)
	reg.Touch(move.ID)

	clock.now = clock.now.Add(50 * time.Second)
	assert.True(t, reg.IsBusy("H1", "A", "R2"), "touch extends the ttl")

	clock.now = clock.now.Add(time.Minute)
	assert.Equal(t, 1, reg.PurgeExpired())
	assert.False(t, reg.IsBusy("H1", "A", "R2"))
}

func TestRegistry_ExpiryKeepsAcquiredMove(t *testing.T) {
	clock := &fakeTime{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	reg := newRegistry(clock, nil)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	_, release, err := reg.Acquire("H1", move.ID)
	require.NoError(t, err)
	defer release()

	clock.now = clock.now.Add(2 * time.Minute)
	assert.Equal(t, 0, reg.PurgeExpired())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_View(t *testing.T) {
	reg := newRegistry(&fakeTime{now: time.Now()}, nil)

	move, err := reg.Open("H1", pendingSession(t, "A", "R2"))
	require.NoError(t, err)

	var state rack.State
	err = reg.View("H1", move.ID, func(m *Move) {
		state = m.Session.State()
	})
	require.NoError(t, err)
	assert.Equal(t, rack.StateAwaitingUserChoice, state)
}
