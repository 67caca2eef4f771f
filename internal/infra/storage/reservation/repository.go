package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RackService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

const tableReservations = "reservations"

var reservationColumns = []string{
	"id",
	"hotel_id",
	"guest_name",
	"start_date",
	"end_date",
	"rate",
	"room_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований шахматки
// Бронирования создает и редактирует PMS, сервис меняет только room_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование отеля по ID
func (r *Repository) GetByID(ctx context.Context, hotelID, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(tableReservations).
		Where(squirrel.Eq{"hotel_id": hotelID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByHotelAndPeriod получает бронирования отеля, пересекающие период [from, to)
// Возвращает бронирования во всех статусах: активность оценивает ядро шахматки
func (r *Repository) GetByHotelAndPeriod(ctx context.Context, hotelID string, from, to types.Date) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(tableReservations).
		Where(squirrel.Eq{"hotel_id": hotelID}).
		Where(squirrel.Lt{"start_date": to}).
		Where(squirrel.Gt{"end_date": from}).
		OrderBy("start_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHotelAndPeriod - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - rows iteration: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateRoom переназначает бронирование в другую комнату
func (r *Repository) UpdateRoom(ctx context.Context, hotelID, id, roomID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableReservations).
		Set("room_id", roomID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"hotel_id": hotelID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoom - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountOverlapping считает активные бронирования комнаты, пересекающие [start, end), кроме excludeID
func (r *Repository) CountOverlapping(ctx context.Context, hotelID, roomID, excludeID string, start, end types.Date) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableReservations).
		Where(squirrel.Eq{
			"hotel_id": hotelID,
			"room_id":  roomID,
			"status":   activeStatuses(),
		}).
		Where(squirrel.NotEq{"id": excludeID}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ApplyAssignments переносит бронирования по плану и проверяет, что в новых комнатах нет пересечений
// Должен вызываться внутри транзакции: при ErrAssignmentConflict транзакция откатывается вызывающим кодом
func (r *Repository) ApplyAssignments(ctx context.Context, hotelID string, assignments []domain.Assignment) error {
	for _, a := range assignments {
		if err := r.UpdateRoom(ctx, hotelID, a.ReservationID, a.NewRoomID); err != nil {
			return err
		}
	}

	// Проверяем после всех обновлений: в swap бронирования меняются комнатами
	for _, a := range assignments {
		res, err := r.GetByID(ctx, hotelID, a.ReservationID)
		if err != nil {
			return err
		}
		if !res.IsActive() {
			continue
		}

		count, err := r.CountOverlapping(ctx, hotelID, a.NewRoomID, res.ID, res.Start, res.End)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: reservation %s in room %s overlaps %d reservation(s)",
				ErrAssignmentConflict, res.ID, a.NewRoomID, count)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.HotelID,
		&res.GuestName,
		&res.Start,
		&res.End,
		&res.Rate,
		&res.RoomID,
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func activeStatuses() []string {
	statuses := make([]string, 0, len(domain.ActiveReservationStatuses))
	for _, s := range domain.ActiveReservationStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
