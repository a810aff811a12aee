package repository

import (
	"context"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT username, password_hash, full_name, email, role, department_id, manager_id, is_active, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Username, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.DepartmentID, &employee.ManagerID, &employee.IsActive, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeeByUsername(username string) (*domain.Employee, error) {
	query := `
		SELECT id, password_hash, full_name, email, role, department_id, manager_id, is_active, created_at, version
		FROM employees WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Username: username,
	}

	dst := []any{&employee.ID, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.DepartmentID, &employee.ManagerID, &employee.IsActive, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			password_hash = $1,
			email = $2,
			role = $3,
			department_id = $4,
			manager_id = $5,
			is_active = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING username, full_name, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.PasswordHash, employee.Email, employee.Role, employee.DepartmentID, employee.ManagerID, employee.IsActive, employee.ID, employee.Version}
	dst := []any{&employee.Username, &employee.FullName, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, role, department_id, manager_id, is_active, created_at, version FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Username, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.DepartmentID, &employee.ManagerID, &employee.IsActive, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployeesByManager 返回某位经理名下的在职员工，即排班界面上的团队名单
func (r *Repository) GetEmployeesByManager(managerID int64) ([]*domain.Employee, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, role, department_id, manager_id, is_active, created_at, version
		FROM employees
		WHERE manager_id = $1 AND is_active = TRUE
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Username, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.DepartmentID, &employee.ManagerID, &employee.IsActive, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (username, password_hash, full_name, email, role, department_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, version
	`

	args := []any{employee.Username, employee.PasswordHash, employee.FullName, employee.Email, employee.Role, employee.DepartmentID, employee.ManagerID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.IsActive, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
