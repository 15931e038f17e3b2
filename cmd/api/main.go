package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workforcehq/attendance-engine-go/internal/config"
	appHTTP "github.com/workforcehq/attendance-engine-go/internal/handler/http"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
	"github.com/workforcehq/attendance-engine-go/internal/repository/postgresql"
	reportService "github.com/workforcehq/attendance-engine-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	rosterRepo := postgresql.NewRosterRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	reportSvc, err := reportService.NewReportService(
		cfg.Attendance,
		rosterRepo,
		punchRepo,
		leaveRepo,
		holidayRepo,
	)
	if err != nil {
		log.Fatal("Error building report service: ", err)
	}

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.FrontendURL, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
