package postgresql

import (
	"context"
	"fmt"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) report.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

// ListEmployees returns the active roster in a stable order so report rows
// come out the same on every request.
func (r *rosterRepositoryImpl) ListEmployees(ctx context.Context) ([]reconcile.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department
		FROM employees
		WHERE deleted_at IS NULL AND employment_status = 'active'
		ORDER BY department, full_name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []reconcile.Employee
	for rows.Next() {
		var emp reconcile.Employee
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
