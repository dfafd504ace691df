package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/timepay/timepay-backend-go/internal/config"
	appHTTP "github.com/timepay/timepay-backend-go/internal/handler/http"
	"github.com/timepay/timepay-backend-go/internal/pkg/cron"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
	"github.com/timepay/timepay-backend-go/internal/pkg/jwt"
	"github.com/timepay/timepay-backend-go/internal/repository/postgresql"
	adminService "github.com/timepay/timepay-backend-go/internal/service/admin"
	attendanceService "github.com/timepay/timepay-backend-go/internal/service/attendance"
	authService "github.com/timepay/timepay-backend-go/internal/service/auth"
	overtimeService "github.com/timepay/timepay-backend-go/internal/service/overtime"
	payrollService "github.com/timepay/timepay-backend-go/internal/service/payroll"
	reportService "github.com/timepay/timepay-backend-go/internal/service/report"
	userService "github.com/timepay/timepay-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare schema: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration)

	authSvc := authService.NewAuthService(db, userRepo, auditRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(userRepo, overtimeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(userRepo, overtimeRepo, attendanceRepo, statsRepo)
	adminSvc := adminService.NewAdminService(db, userRepo, overtimeRepo, attendanceRepo, statsRepo)

	if cfg.Bootstrap.AdminEmail != "" && cfg.Bootstrap.AdminPassword != "" {
		if err := authSvc.SeedSuperAdmin(context.Background(), cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
			log.Fatal("Failed to seed super admin: ", err)
		}
	}

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	profileHandler := appHTTP.NewProfileHandler(userSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(overtimeSvc, attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	adminHandler := appHTTP.NewAdminHandler(jwtService, adminSvc, authSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		profileHandler,
		timesheetHandler,
		dashboardHandler,
		reportHandler,
		adminHandler,
	)

	if cfg.KeepAlive.URL != "" {
		interval, err := time.ParseDuration(cfg.KeepAlive.Interval)
		if err != nil {
			log.Fatal("Invalid KEEP_ALIVE_INTERVAL: ", err)
		}
		scheduler := cron.NewScheduler()
		scheduler.AddJob("keep-alive", interval, cron.KeepAliveJob(cfg.KeepAlive.URL))
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
