package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) report.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListPunches returns raw punches for the month. No cleanup happens here:
// duplicates and malformed records pass through so the engine can report
// them instead of the database silently hiding them.
func (r *punchRepositoryImpl) ListPunches(ctx context.Context, month, year int) ([]reconcile.AttendancePunch, error) {
	q := GetQuerier(ctx, r.db)

	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	query := `
		SELECT employee_id, date, check_in, check_out
		FROM attendance_punches
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id, date, check_in NULLS LAST
	`

	rows, err := q.Query(ctx, query, startOfMonth, endOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []reconcile.AttendancePunch
	for rows.Next() {
		var punch reconcile.AttendancePunch
		if err := rows.Scan(&punch.EmployeeID, &punch.Date, &punch.CheckIn, &punch.CheckOut); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, punch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}
