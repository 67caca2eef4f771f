package rack

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// State состояние интерактивного переноса бронирования
type State string

const (
	StateIdle               State = "idle"
	StateConflictCheck      State = "conflict_check"
	StateAwaitingUserChoice State = "awaiting_user_choice"
	StateResolving          State = "resolving"
)

// Plan набор назначений, который нужно применить атомарно
//
// Propose и Choose возвращают nil план без ошибки, когда применять нечего:
// Propose при найденном конфликте (сессия в AwaitingUserChoice, варианты в Options),
// Choose при выборе cancel (сессия в Idle). Пустой Assignments у не-nil плана означает
// перенос в ту же комнату.
type Plan struct {
	Resolution  domain.Resolution // Пусто для прямого переноса
	Assignments []domain.Assignment
}

// Session машина состояний переноса одного бронирования
//
//	Idle -> ConflictCheck -> Idle (прямой перенос или ошибка ввода)
//	                      -> AwaitingUserChoice -> Idle (cancel)
//	                                            -> Resolving -> Idle (успех)
//	                                                         -> AwaitingUserChoice (ошибка)
//
// Session не потокобезопасна: конкурентный доступ сериализует вызывающий код.
type Session struct {
	state         State
	reservationID string
	targetRoomID  string
	conflict      *domain.ConflictInfo
	options       []domain.Resolution
	lastErr       error
}

// NewSession создает сессию в состоянии Idle
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State возвращает текущее состояние
func (s *Session) State() State {
	return s.state
}

// ReservationID возвращает ID переносимого бронирования
func (s *Session) ReservationID() string {
	return s.reservationID
}

// TargetRoomID возвращает ID целевой комнаты
func (s *Session) TargetRoomID() string {
	return s.targetRoomID
}

// Conflict возвращает последний обнаруженный конфликт
func (s *Session) Conflict() *domain.ConflictInfo {
	return s.conflict
}

// Options возвращает предложенные варианты разрешения
func (s *Session) Options() []domain.Resolution {
	return s.options
}

// LastError возвращает ошибку последней неудачной попытки разрешения
func (s *Session) LastError() error {
	return s.lastErr
}

// Propose проверяет перенос на конфликты
// Без конфликтов возвращает план прямого переноса и остается в Idle.
// С конфликтами переходит в AwaitingUserChoice и возвращает nil план;
// конфликт и варианты доступны через Conflict и Options.
func (s *Session) Propose(snapshot *domain.Snapshot, reservationID, targetRoomID string) (*Plan, error) {
	if s.state != StateIdle {
		return nil, fmt.Errorf("%w: propose from %s", ErrInvalidTransition, s.state)
	}

	s.state = StateConflictCheck
	s.reservationID = reservationID
	s.targetRoomID = targetRoomID
	s.lastErr = nil

	conflict, err := DetectConflicts(snapshot, reservationID, targetRoomID)
	if err != nil {
		s.reset()
		return nil, err
	}

	s.conflict = conflict
	s.options = Options(conflict)

	if !conflict.HasConflicts() {
		assignments, err := Direct(conflict)
		s.reset()
		if err != nil {
			return nil, err
		}
		return &Plan{Assignments: assignments}, nil
	}

	s.state = StateAwaitingUserChoice
	return nil, nil
}

// Choose применяет выбор пользователя к свежему снимку рэка
//
// cancel возвращает сессию в Idle без плана. swap и relocate заново ищут конфликты
// на снимке, переходят в Resolving и строят план. Если построить план не удалось,
// сессия возвращается в AwaitingUserChoice с обновленными вариантами.
// После успешного плана вызывающий код обязан вызвать Complete или Fail.
func (s *Session) Choose(choice domain.Resolution, snapshot *domain.Snapshot) (*Plan, error) {
	switch s.state {
	case StateAwaitingUserChoice:
	case StateResolving:
		return nil, ErrResolutionInProgress
	default:
		return nil, fmt.Errorf("%w: choose from %s", ErrInvalidTransition, s.state)
	}

	if !domain.IsValidResolution(choice) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResolution, choice)
	}

	if choice == domain.ResolutionCancel {
		s.reset()
		return nil, nil
	}

	conflict, err := DetectConflicts(snapshot, s.reservationID, s.targetRoomID)
	if err != nil {
		// Бронирование или комната исчезли: продолжать нечего
		s.reset()
		return nil, err
	}

	s.state = StateResolving
	s.conflict = conflict
	s.options = Options(conflict)

	var assignments []domain.Assignment
	switch {
	case !conflict.HasConflicts():
		// Конфликт исчез после обновления данных: переносим напрямую
		assignments, err = Direct(conflict)
	case choice == domain.ResolutionSwap:
		assignments, err = Swap(conflict)
	default:
		assignments, err = Relocate(snapshot, conflict)
	}

	if err != nil {
		s.state = StateAwaitingUserChoice
		s.lastErr = err
		return nil, err
	}

	s.lastErr = nil
	return &Plan{Resolution: choice, Assignments: assignments}, nil
}

// Complete фиксирует успешное применение плана
func (s *Session) Complete() error {
	if s.state != StateResolving {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, s.state)
	}
	s.reset()
	return nil
}

// Fail возвращает сессию к выбору пользователя после ошибки применения плана
func (s *Session) Fail(err error) error {
	if s.state != StateResolving {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, s.state)
	}
	if err == nil {
		err = errors.New("rack: resolution failed")
	}
	s.state = StateAwaitingUserChoice
	s.lastErr = err
	return nil
}

// Cancel отменяет перенос в ожидании выбора: ничего не применялось, откатывать нечего
func (s *Session) Cancel() error {
	switch s.state {
	case StateIdle:
		return nil
	case StateAwaitingUserChoice:
		s.reset()
		return nil
	default:
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.state)
	}
}

func (s *Session) reset() {
	s.state = StateIdle
	s.conflict = nil
	s.options = nil
}
