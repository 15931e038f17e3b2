package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) report.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListApprovedLeaves returns approved leave overlapping the month. Ranges
// may extend past the month boundary; the engine clips them to the period.
func (r *leaveRepositoryImpl) ListApprovedLeaves(ctx context.Context, month, year int) ([]reconcile.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	query := `
		SELECT lr.employee_id, lr.start_date, lr.end_date, lt.name
		FROM leave_records lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.status = 'approved'
		AND lr.start_date < $2 AND lr.end_date >= $1
		ORDER BY lr.employee_id, lr.start_date
	`

	rows, err := q.Query(ctx, query, startOfMonth, endOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var leaves []reconcile.LeaveRecord
	for rows.Next() {
		var leave reconcile.LeaveRecord
		if err := rows.Scan(&leave.EmployeeID, &leave.StartDate, &leave.EndDate, &leave.LeaveType); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		leaves = append(leaves, leave)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}
