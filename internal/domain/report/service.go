package report

import "context"

// ReportService generates attendance reports from the current provider
// snapshot. Nothing is persisted; every call recomputes from scratch.
type ReportService interface {
	// GenerateAttendanceReport returns the full report: calendar view,
	// summary table, department series, and collected warnings.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)

	// GenerateCSVExport returns the flat export rows for the same period.
	GenerateCSVExport(ctx context.Context, req AttendanceReportRequest) (CSVExport, error)
}
