package repository

import (
	"context"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

func (r *Repository) GetAllDepartments() ([]*domain.Department, error) {
	query := `
		SELECT id, name, created_at, version FROM departments ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		department := &domain.Department{}
		if err := rows.Scan(&department.ID, &department.Name, &department.CreatedAt, &department.Version); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *Repository) CreateDepartment(department *domain.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, department.Name).Scan(&department.ID, &department.CreatedAt, &department.Version); err != nil {
		return err
	}

	return nil
}
