package rack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

func swapSnapshot() *domain.Snapshot {
	return snapshot(
		[]*domain.Room{room("R1", "101"), room("R2", "102"), room("R3", "103")},
		reservation("A", "R1", "2025-03-01", "2025-03-03", 100),
		reservation("B", "R2", "2025-03-01", "2025-03-03", 120),
	)
}

func TestSession_DirectMoveStaysIdle(t *testing.T) {
	s := NewSession()

	plan, err := s.Propose(swapSnapshot(), "A", "R3")
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, []domain.Assignment{{ReservationID: "A", NewRoomID: "R3"}}, plan.Assignments)
	assert.Empty(t, plan.Resolution)
}

func TestSession_InvalidInputReturnsToIdle(t *testing.T) {
	s := NewSession()

	plan, err := s.Propose(swapSnapshot(), "A", "R404")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, plan)
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_SwapFlow(t *testing.T) {
	s := NewSession()

	// Конфликт: плана нет, сессия ждет выбора
	plan, err := s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Equal(t, StateAwaitingUserChoice, s.State())
	require.NotNil(t, s.Conflict())
	assert.Equal(t, []string{"B"}, ids(s.Conflict().ConflictingReservations))
	assert.Contains(t, s.Options(), domain.ResolutionSwap)

	plan, err = s.Choose(domain.ResolutionSwap, swapSnapshot())
	require.NoError(t, err)
	assert.Equal(t, StateResolving, s.State())
	assert.Equal(t, domain.ResolutionSwap, plan.Resolution)
	assert.Equal(t, []domain.Assignment{
		{ReservationID: "A", NewRoomID: "R2"},
		{ReservationID: "B", NewRoomID: "R1"},
	}, plan.Assignments)

	// Повторный вход в Resolving запрещен
	_, err = s.Choose(domain.ResolutionRelocate, swapSnapshot())
	assert.ErrorIs(t, err, ErrResolutionInProgress)

	require.NoError(t, s.Complete())
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_CancelHasNoSideEffects(t *testing.T) {
	s := NewSession()

	_, err := s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)

	plan, err := s.Choose(domain.ResolutionCancel, swapSnapshot())
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Equal(t, StateIdle, s.State())

	_, err = s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)
	require.NoError(t, s.Cancel())
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_NoVacantRoomKeepsAwaitingChoice(t *testing.T) {
	snap := snapshot(
		[]*domain.Room{room("R1", "101"), room("R2", "102")},
		reservation("A", "R1", "2025-03-01", "2025-03-04", 100),
		reservation("B", "R2", "2025-03-02", "2025-03-05", 120),
		reservation("X", "R1", "2025-03-04", "2025-03-06", 90),
	)
	s := NewSession()

	_, err := s.Propose(snap, "A", "R2")
	require.NoError(t, err)
	assert.NotContains(t, s.Options(), domain.ResolutionSwap)

	_, err = s.Choose(domain.ResolutionSwap, snap)
	assert.ErrorIs(t, err, ErrSwapNotAvailable)
	assert.Equal(t, StateAwaitingUserChoice, s.State())

	plan, err := s.Choose(domain.ResolutionRelocate, snap)
	assert.ErrorIs(t, err, ErrNoVacantRoom)
	assert.Nil(t, plan)
	assert.Equal(t, StateAwaitingUserChoice, s.State())
	assert.ErrorIs(t, s.LastError(), ErrNoVacantRoom)

	// После освобождения комнаты повторная попытка проходит
	snap.Rooms = append(snap.Rooms, room("R3", "103"))
	plan, err = s.Choose(domain.ResolutionRelocate, snap)
	require.NoError(t, err)
	assert.Equal(t, domain.Assignment{ReservationID: "B", NewRoomID: "R3"}, plan.Assignments[1])
	assert.Nil(t, s.LastError())
}

func TestSession_ConflictGoneOnRefresh(t *testing.T) {
	s := NewSession()

	_, err := s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)

	fresh := swapSnapshot()
	fresh.Reservations[1].Status = domain.ReservationStatusCancelled

	plan, err := s.Choose(domain.ResolutionRelocate, fresh)
	require.NoError(t, err)
	assert.Equal(t, []domain.Assignment{{ReservationID: "A", NewRoomID: "R2"}}, plan.Assignments)
}

func TestSession_FailReturnsToAwaitingChoice(t *testing.T) {
	s := NewSession()

	_, err := s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)
	_, err = s.Choose(domain.ResolutionSwap, swapSnapshot())
	require.NoError(t, err)

	require.NoError(t, s.Fail(assert.AnError))
	assert.Equal(t, StateAwaitingUserChoice, s.State())
	assert.Equal(t, assert.AnError, s.LastError())
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := NewSession()

	_, err := s.Choose(domain.ResolutionSwap, swapSnapshot())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Complete(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Fail(nil), ErrInvalidTransition)

	_, err = s.Propose(swapSnapshot(), "A", "R2")
	require.NoError(t, err)

	_, err = s.Propose(swapSnapshot(), "A", "R3")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Choose("upgrade", swapSnapshot())
	assert.ErrorIs(t, err, ErrUnknownResolution)
	assert.Equal(t, StateAwaitingUserChoice, s.State())
}
