package repository

import (
	"context"
	"time"

	"github.com/staffio-dev/roster-manager/backend/internal/domain"
)

// InsertMonthlyRoster 发布一个月份的排班表。
// 同一位经理重复发布同一个月份时，先删除旧的再插入新的
func (r *Repository) InsertMonthlyRoster(roster *domain.MonthlyRoster) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM monthly_rosters WHERE manager_id = $1 AND year = $2 AND month = $3`
	if _, err := tx.ExecContext(ctx, query, roster.ManagerID, roster.Year, roster.Month); err != nil {
		return err
	}

	query = `
		INSERT INTO monthly_rosters (manager_id, year, month)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, roster.ManagerID, roster.Year, roster.Month).Scan(&roster.ID, &roster.CreatedAt, &roster.Version); err != nil {
		return err
	}

	for _, entry := range roster.Entries {
		query := `
			INSERT INTO monthly_roster_entries (monthly_roster_id, employee_id, day, shift_id)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, query, roster.ID, entry.EmployeeID, entry.Day, entry.ShiftID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMonthlyRoster(managerID int64, year int, month int) (*domain.MonthlyRoster, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, created_at, version
		FROM monthly_rosters
		WHERE manager_id = $1 AND year = $2 AND month = $3
	`

	roster := &domain.MonthlyRoster{
		ManagerID: managerID,
		Year:      year,
		Month:     month,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, managerID, year, month).Scan(&roster.ID, &roster.CreatedAt, &roster.Version); err != nil {
		return nil, err
	}

	query = `
		SELECT employee_id, day, shift_id
		FROM monthly_roster_entries
		WHERE monthly_roster_id = $1
		ORDER BY employee_id, day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, roster.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster.Entries = make([]domain.RosterEntry, 0)
	for rows.Next() {
		var entry domain.RosterEntry
		if err := rows.Scan(&entry.EmployeeID, &entry.Day, &entry.ShiftID); err != nil {
			return nil, err
		}
		roster.Entries = append(roster.Entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
