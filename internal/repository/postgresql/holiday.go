package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) report.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// ListHolidays returns the holiday dates falling inside the month. Callers
// treat any error here as "no holiday data", not as a failed report.
func (r *holidayRepositoryImpl) ListHolidays(ctx context.Context, month, year int) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	query := `
		SELECT date
		FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, startOfMonth, endOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
