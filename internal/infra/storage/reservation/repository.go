package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"account_id",
	"service_id",
	"date_of_service",
	"reservation_length",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySpecialistInRange получает бронирования специалиста, пересекающиеся с периодом [from, to)
// Отмененные бронирования не возвращаются, они не занимают время специалиста.
//
// Бронь пересекается с периодом, если она начинается раньше конца периода
// и заканчивается позже его начала. Бронь, начавшаяся накануне и
// продолжающаяся после полуночи, тоже попадает в выборку.
func (r *Repository) GetBySpecialistInRange(ctx context.Context, specialistID int64, from, to time.Time) ([]*domain.Reservation, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from=%s, to=%s", ErrInvalidRange, from, to)
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"account_id": specialistID}).
		Where(squirrel.Lt{"date_of_service": to}).
		Where(squirrel.Expr("date_of_service + make_interval(mins => COALESCE(reservation_length, 0)) > ?", from)).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("date_of_service ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialistInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialistInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var length sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.AccountID,
			&res.ServiceID,
			&res.DateOfService,
			&length,
			&res.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if length.Valid {
			minutes := int(length.Int64)
			res.ReservationLength = &minutes
		}
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
