package moves

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RackService/internal/rack"
)

// Move ожидающий выбора пользователя перенос
type Move struct {
	ID            string
	HotelID       string
	ReservationID string
	TargetRoomID  string
	Session       *rack.Session
	CreatedAt     time.Time

	expiresAt time.Time
	mu        sync.Mutex // сериализует работу с Session
}

// Registry реестр ожидающих переносов в памяти процесса
//
// Одно бронирование и одна целевая комната могут участвовать не более чем в одном переносе.
// Брошенные переносы истекают через ttl.
type Registry struct {
	mu            sync.Mutex
	moves         map[string]*Move
	byReservation map[string]string
	byRoom        map[string]string

	ttl          time.Duration
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewRegistry создает реестр; metrics может быть nil
func NewRegistry(ttl time.Duration, timeProvider TimeProvider, metrics MetricsRecorder, logger Logger) *Registry {
	return &Registry{
		moves:         make(map[string]*Move),
		byReservation: make(map[string]string),
		byRoom:        make(map[string]string),
		ttl:           ttl,
		timeProvider:  timeProvider,
		metrics:       metrics,
		logger:        logger,
	}
}

// IsBusy проверяет, участвует ли бронирование или комната в ожидающем переносе
func (r *Registry) IsBusy(hotelID, reservationID, roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpiredLocked()
	return r.isBusyLocked(hotelID, reservationID, roomID)
}

// Open регистрирует перенос с сессией в состоянии AwaitingUserChoice
func (r *Registry) Open(hotelID string, session *rack.Session) (*Move, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpiredLocked()

	reservationID, roomID := session.ReservationID(), session.TargetRoomID()
	if r.isBusyLocked(hotelID, reservationID, roomID) {
		return nil, fmt.Errorf("%w: reservation=%s room=%s", ErrMoveInProgress, reservationID, roomID)
	}

	now := r.timeProvider.Now()
	move := &Move{
		ID:            uuid.NewString(),
		HotelID:       hotelID,
		ReservationID: reservationID,
		TargetRoomID:  roomID,
		Session:       session,
		CreatedAt:     now,
		expiresAt:     now.Add(r.ttl),
	}

	r.moves[move.ID] = move
	r.byReservation[key(hotelID, reservationID)] = move.ID
	r.byRoom[key(hotelID, roomID)] = move.ID
	r.publishLocked()

	r.logger.Info("Moves: opened move id=%s hotel=%s reservation=%s room=%s", move.ID, hotelID, reservationID, roomID)
	return move, nil
}

// Acquire захватывает перенос для обработки выбора пользователя
// Вызывающий обязан вызвать release. Пока перенос захвачен, повторный Acquire возвращает ErrMoveBusy.
func (r *Registry) Acquire(hotelID, moveID string) (*Move, func(), error) {
	move, err := r.lookup(hotelID, moveID)
	if err != nil {
		return nil, nil, err
	}

	if !move.mu.TryLock() {
		return nil, nil, fmt.Errorf("%w: %s", ErrMoveBusy, moveID)
	}

	return move, move.mu.Unlock, nil
}

// View вызывает fn под блокировкой переноса для чтения его состояния
func (r *Registry) View(hotelID, moveID string, fn func(m *Move)) error {
	move, err := r.lookup(hotelID, moveID)
	if err != nil {
		return err
	}

	move.mu.Lock()
	defer move.mu.Unlock()

	fn(move)
	return nil
}

// Touch продлевает жизнь переноса, который остался ждать выбора
func (r *Registry) Touch(moveID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if move, ok := r.moves[moveID]; ok {
		move.expiresAt = r.timeProvider.Now().Add(r.ttl)
	}
}

// Close удаляет перенос и освобождает бронирование и комнату
func (r *Registry) Close(moveID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if move, ok := r.moves[moveID]; ok {
		r.removeLocked(move)
		r.publishLocked()
		r.logger.Info("Moves: closed move id=%s", moveID)
	}
}

// Len возвращает число ожидающих переносов
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.moves)
}

// PurgeExpired удаляет истекшие переносы и возвращает их количество
func (r *Registry) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.purgeExpiredLocked()
}

// RunJanitor периодически удаляет истекшие переносы до закрытия stopCh
func (r *Registry) RunJanitor(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.PurgeExpired(); n > 0 {
				r.logger.Info("Moves: purged %d expired move(s)", n)
			}
		case <-stopCh:
			return
		}
	}
}

func (r *Registry) lookup(hotelID, moveID string) (*Move, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpiredLocked()

	move, ok := r.moves[moveID]
	if !ok || move.HotelID != hotelID {
		return nil, fmt.Errorf("%w: %s", ErrMoveNotFound, moveID)
	}
	return move, nil
}

func (r *Registry) isBusyLocked(hotelID, reservationID, roomID string) bool {
	if _, ok := r.byReservation[key(hotelID, reservationID)]; ok {
		return true
	}
	if _, ok := r.byRoom[key(hotelID, roomID)]; ok {
		return true
	}
	return false
}

func (r *Registry) purgeExpiredLocked() int {
	now := r.timeProvider.Now()
	purged := 0

	for _, move := range r.moves {
		if now.Before(move.expiresAt) {
			continue
		}
		// Захваченный перенос сейчас применяется, его удалит владелец
		if !move.mu.TryLock() {
			continue
		}
		r.removeLocked(move)
		move.mu.Unlock()
		purged++
		r.logger.Warn("Moves: move id=%s expired", move.ID)
	}

	if purged > 0 {
		r.publishLocked()
	}
	return purged
}

func (r *Registry) removeLocked(move *Move) {
	delete(r.moves, move.ID)
	delete(r.byReservation, key(move.HotelID, move.ReservationID))
	delete(r.byRoom, key(move.HotelID, move.TargetRoomID))
}

func (r *Registry) publishLocked() {
	if r.metrics != nil {
		r.metrics.SetPendingMoves(len(r.moves))
	}
}

func key(hotelID, id string) string {
	return hotelID + "/" + id
}
