package report

import "errors"

var (
	ErrInvalidMonth           = errors.New("month must be between 1 and 12")
	ErrInvalidYear            = errors.New("year must be a valid year")
	ErrEmptyRoster            = errors.New("no employees found for the requested period")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
