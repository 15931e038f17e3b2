package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Full report: calendar + summary + departments + warnings
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Individual projections for consumers that need only one shape
	GetCalendarView(w http.ResponseWriter, r *http.Request)
	GetSummaryTable(w http.ResponseWriter, r *http.Request)
	GetDepartmentSeries(w http.ResponseWriter, r *http.Request)

	// CSV download
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parsePeriod(r *http.Request) (report.AttendanceReportRequest, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return report.AttendanceReportRequest{}, fmt.Errorf("invalid month parameter")
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return report.AttendanceReportRequest{}, fmt.Errorf("invalid year parameter")
	}

	return report.AttendanceReportRequest{Month: month, Year: year}, nil
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCalendarView handles GET /reports/attendance/calendar
func (h *reportHandlerImpl) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	// The calendar grid is sliced from the full report so it can never
	// disagree with the summary generated for the same period.
	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, struct {
		Meta           report.Meta                `json:"meta"`
		Calendar       report.CalendarViewPayload `json:"calendar"`
		Warnings       []report.Warning           `json:"warnings"`
		IgnoredRecords int                        `json:"ignored_records"`
	}{result.Meta, result.Calendar, result.Warnings, result.IgnoredRecords})
}

// GetSummaryTable handles GET /reports/attendance/summary
func (h *reportHandlerImpl) GetSummaryTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, struct {
		Meta           report.Meta                `json:"meta"`
		Summary        report.SummaryTablePayload `json:"summary"`
		Warnings       []report.Warning           `json:"warnings"`
		IgnoredRecords int                        `json:"ignored_records"`
	}{result.Meta, result.Summary, result.Warnings, result.IgnoredRecords})
}

// GetDepartmentSeries handles GET /reports/attendance/departments
func (h *reportHandlerImpl) GetDepartmentSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, struct {
		Meta        report.Meta                    `json:"meta"`
		Departments report.DepartmentSeriesPayload `json:"departments"`
	}{result.Meta, result.Departments})
}

// ExportAttendanceCSV handles GET /reports/attendance/export
func (h *reportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	export, err := h.reportService.GenerateCSVExport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))

	writer := csv.NewWriter(w)
	if err := writer.Write(export.Header); err != nil {
		return
	}
	if err := writer.WriteAll(export.Rows); err != nil {
		return
	}
	writer.Flush()
}
