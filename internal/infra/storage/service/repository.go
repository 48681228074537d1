package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения услуг и их расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID вместе с расписанием оказания.
// Незаполненные поля расписания остаются nil.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"provisioning_start_time",
		"provisioning_end_time",
		"provisioning_interval",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var interval sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Schedule.ProvisioningStartTime,
		&svc.Schedule.ProvisioningEndTime,
		&interval,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	if interval.Valid {
		minutes := int(interval.Int64)
		svc.Schedule.ProvisioningInterval = &minutes
	}
	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
