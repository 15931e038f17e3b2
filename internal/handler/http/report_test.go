package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/validator"
)

type stubReportService struct {
	report    report.AttendanceReport
	export    report.CSVExport
	err       error
	exportErr error
}

func (s *stubReportService) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if s.err != nil {
		return report.AttendanceReport{}, s.err
	}
	return s.report, nil
}

func (s *stubReportService) GenerateCSVExport(ctx context.Context, req report.AttendanceReportRequest) (report.CSVExport, error) {
	if s.exportErr != nil {
		return report.CSVExport{}, s.exportErr
	}
	return s.export, nil
}

func sampleReport() report.AttendanceReport {
	return report.AttendanceReport{
		Meta: report.Meta{
			ReportID:    "r-1",
			PeriodMonth: 1,
			PeriodYear:  2024,
			PeriodStart: "2024-01-01",
			PeriodEnd:   "2024-01-31",
		},
		Calendar: report.CalendarViewPayload{
			Days: []string{"2024-01-01"},
			Rows: []report.CalendarRow{{
				EmployeeID: "e1",
				FullName:   "Ade Putra",
				Department: "Engineering",
				Cells:      []report.CalendarCell{{Date: "2024-01-01", Status: "present"}},
			}},
		},
		Summary: report.SummaryTablePayload{
			Rows: []report.SummaryRow{{EmployeeID: "e1", Present: 1, AttendanceRateLabel: "100.0%"}},
		},
		Departments: report.DepartmentSeriesPayload{
			Points: []report.DepartmentPoint{{Department: "Engineering", EmployeeCount: 1}},
		},
	}
}

func doRequest(t *testing.T, handlerFunc http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestGetAttendanceReport(t *testing.T) {
	handler := NewReportHandler(&stubReportService{report: sampleReport()})

	rec := doRequest(t, handler.GetAttendanceReport, "/api/v1/reports/attendance?month=1&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.JSONEq(t, "true", string(envelope["success"]))

	var data report.AttendanceReport
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "r-1", data.Meta.ReportID)
	assert.Len(t, data.Calendar.Rows, 1)
	assert.Len(t, data.Summary.Rows, 1)
}

func TestGetAttendanceReport_MissingPeriodParams(t *testing.T) {
	handler := NewReportHandler(&stubReportService{report: sampleReport()})

	cases := []struct {
		name   string
		target string
	}{
		{"no params", "/api/v1/reports/attendance"},
		{"missing year", "/api/v1/reports/attendance?month=1"},
		{"non-numeric month", "/api/v1/reports/attendance?month=jan&year=2024"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := doRequest(t, handler.GetAttendanceReport, c.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetAttendanceReport_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}, http.StatusUnprocessableEntity},
		{"empty roster", report.ErrEmptyRoster, http.StatusNotFound},
		{"generation failed", report.ErrReportGenerationFailed, http.StatusInternalServerError},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := NewReportHandler(&stubReportService{err: c.err})
			rec := doRequest(t, handler.GetAttendanceReport, "/api/v1/reports/attendance?month=1&year=2024")
			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}

func TestGetCalendarView_SlicesFullReport(t *testing.T) {
	handler := NewReportHandler(&stubReportService{report: sampleReport()})

	rec := doRequest(t, handler.GetCalendarView, "/api/v1/reports/attendance/calendar?month=1&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var data struct {
		Meta     report.Meta                `json:"meta"`
		Calendar report.CalendarViewPayload `json:"calendar"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "r-1", data.Meta.ReportID)
	require.Len(t, data.Calendar.Rows, 1)
	assert.Equal(t, "e1", data.Calendar.Rows[0].EmployeeID)
}

func TestGetSummaryTable(t *testing.T) {
	handler := NewReportHandler(&stubReportService{report: sampleReport()})

	rec := doRequest(t, handler.GetSummaryTable, "/api/v1/reports/attendance/summary?month=1&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var data struct {
		Summary report.SummaryTablePayload `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.Len(t, data.Summary.Rows, 1)
	assert.Equal(t, "100.0%", data.Summary.Rows[0].AttendanceRateLabel)
}

func TestGetDepartmentSeries(t *testing.T) {
	handler := NewReportHandler(&stubReportService{report: sampleReport()})

	rec := doRequest(t, handler.GetDepartmentSeries, "/api/v1/reports/attendance/departments?month=1&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var data struct {
		Departments report.DepartmentSeriesPayload `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.Len(t, data.Departments.Points, 1)
	assert.Equal(t, "Engineering", data.Departments.Points[0].Department)
}

func TestExportAttendanceCSV(t *testing.T) {
	handler := NewReportHandler(&stubReportService{export: report.CSVExport{
		Filename: "attendance_2024_01.csv",
		Header:   []string{"employee_id", "full_name"},
		Rows:     [][]string{{"e1", "Ade Putra"}},
	}})

	rec := doRequest(t, handler.ExportAttendanceCSV, "/api/v1/reports/attendance/export?month=1&year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="attendance_2024_01.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "employee_id,full_name\ne1,Ade Putra\n", rec.Body.String())
}

func TestExportAttendanceCSV_ErrorBeforeHeaders(t *testing.T) {
	handler := NewReportHandler(&stubReportService{exportErr: report.ErrEmptyRoster})

	rec := doRequest(t, handler.ExportAttendanceCSV, "/api/v1/reports/attendance/export?month=1&year=2024")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
