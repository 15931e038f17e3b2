package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	engine "github.com/workforcehq/attendance-engine-go/internal/service/reconcile"
)

type ReportServiceImpl struct {
	cfg         reconcile.Config
	rosterRepo  report.RosterRepository
	punchRepo   report.PunchRepository
	leaveRepo   report.LeaveRepository
	holidayRepo report.HolidayRepository
}

// NewReportService wires the providers to the reconciliation engine. The
// holiday repository may be nil: holidays are an optional collaborator.
func NewReportService(
	cfg reconcile.Config,
	rosterRepo report.RosterRepository,
	punchRepo report.PunchRepository,
	leaveRepo report.LeaveRepository,
	holidayRepo report.HolidayRepository,
) (report.ReportService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrInvalidConfiguration, err)
	}
	return &ReportServiceImpl{
		cfg:         cfg,
		rosterRepo:  rosterRepo,
		punchRepo:   punchRepo,
		leaveRepo:   leaveRepo,
		holidayRepo: holidayRepo,
	}, nil
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	matrix, stats, warnings, meta, err := s.reconcilePeriod(ctx, req)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	projected, ignored := engine.ProjectWarnings(warnings)

	return report.AttendanceReport{
		Meta:           meta,
		Calendar:       engine.ProjectCalendarView(matrix),
		Summary:        engine.ProjectSummaryTable(stats),
		Departments:    engine.ProjectDepartmentSeries(stats),
		Warnings:       projected,
		IgnoredRecords: ignored,
	}, nil
}

// GenerateCSVExport implements report.ReportService.
func (s *ReportServiceImpl) GenerateCSVExport(ctx context.Context, req report.AttendanceReportRequest) (report.CSVExport, error) {
	_, stats, _, meta, err := s.reconcilePeriod(ctx, req)
	if err != nil {
		return report.CSVExport{}, err
	}

	return report.CSVExport{
		Filename: fmt.Sprintf("attendance_%04d_%02d.csv", meta.PeriodYear, meta.PeriodMonth),
		Header:   engine.CSVHeader(),
		Rows:     engine.ProjectCSVRows(stats),
	}, nil
}

// reconcilePeriod runs the full pipeline for one month: fetch a consistent
// snapshot from the providers, expand the calendar, build the matrix, and
// aggregate it. Provider fetches fan out concurrently; the engine itself
// stays synchronous.
func (s *ReportServiceImpl) reconcilePeriod(ctx context.Context, req report.AttendanceReportRequest) (*reconcile.Matrix, reconcile.AggregateStats, []reconcile.Warning, report.Meta, error) {
	if err := req.Validate(); err != nil {
		return nil, reconcile.AggregateStats{}, nil, report.Meta{}, err
	}

	var (
		employees []reconcile.Employee
		punches   []reconcile.AttendancePunch
		leaves    []reconcile.LeaveRecord
		holidays  []time.Time
		warnings  []reconcile.Warning
	)

	holidayFailed := false
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.rosterRepo.ListEmployees(gctx)
		if err != nil {
			return fmt.Errorf("failed to get roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		punches, err = s.punchRepo.ListPunches(gctx, req.Month, req.Year)
		if err != nil {
			return fmt.Errorf("failed to get punches: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedLeaves(gctx, req.Month, req.Year)
		if err != nil {
			return fmt.Errorf("failed to get leave records: %w", err)
		}
		return nil
	})
	if s.holidayRepo != nil {
		g.Go(func() error {
			var err error
			holidays, err = s.holidayRepo.ListHolidays(gctx, req.Month, req.Year)
			if err != nil {
				// Optional collaborator: degrade to "no holidays".
				holidays = nil
				holidayFailed = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, reconcile.AggregateStats{}, nil, report.Meta{}, err
	}

	if len(employees) == 0 {
		return nil, reconcile.AggregateStats{}, nil, report.Meta{}, report.ErrEmptyRoster
	}

	if holidayFailed {
		warnings = append(warnings, reconcile.NewWarning(
			reconcile.WarnMissingHolidayData, "", time.Time{},
			"holiday provider unavailable; report generated with no holidays",
		))
	}

	days := engine.ExpandMonth(req.Year, time.Month(req.Month), s.cfg.WeekendDays, engine.HolidaySet(holidays))

	matrix, err := engine.NewBuilder(s.cfg).Build(employees, days, punches, leaves)
	if err != nil {
		return nil, reconcile.AggregateStats{}, nil, report.Meta{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}
	warnings = append(warnings, matrix.Warnings...)

	stats := engine.Aggregate(matrix)

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)
	meta := report.Meta{
		ReportID:    uuid.NewString(),
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format(reconcile.DateLayout),
		PeriodEnd:   periodEnd.Format(reconcile.DateLayout),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	return matrix, stats, warnings, meta, nil
}
