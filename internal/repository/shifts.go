package repository

import (
	"context"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, department_id, created_at, version
		FROM shifts
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{}
		dst := []any{&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime, &shift.DepartmentID, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShift(id int64) (*domain.Shift, error) {
	query := `
		SELECT name, start_time, end_time, department_id, created_at, version
		FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	dst := []any{&shift.Name, &shift.StartTime, &shift.EndTime, &shift.DepartmentID, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) CreateShift(shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (name, start_time, end_time, department_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.Name, shift.StartTime, shift.EndTime, shift.DepartmentID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShift(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			name = $1,
			start_time = $2,
			end_time = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{shift.Name, shift.StartTime, shift.EndTime, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShift(id int64) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
