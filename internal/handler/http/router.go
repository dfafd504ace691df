package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timepay/timepay-backend-go/internal/config"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	timesheetHandler TimesheetHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timepay-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)

	// Keep-alive target; also the deployment health probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Alive"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/logout", authHandler.Logout)
		})

		// Requires a session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/change-password", authHandler.ChangePassword)

			r.Get("/profile", profileHandler.Get)
			r.Post("/profile", profileHandler.Update)

			r.Get("/overtime", timesheetHandler.ListOvertime)
			r.Post("/overtime", timesheetHandler.AddOvertime)
			r.Post("/overtime/{id}/delete", timesheetHandler.DeleteOvertime)
			r.Get("/attendance", timesheetHandler.ListAttendance)
			r.Post("/attendance", timesheetHandler.AddAttendance)
			r.Post("/attendance/{id}/delete", timesheetHandler.DeleteAttendance)

			r.Get("/dashboard", dashboardHandler.Dashboard)
			r.Get("/history", dashboardHandler.History)

			r.Get("/export/excel", reportHandler.ExportExcel)
			r.Get("/export/pdf", reportHandler.ExportPDF)

			// Super admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)

				r.Get("/dashboard", adminHandler.Dashboard)
				r.Get("/export/pdf", reportHandler.AdminUserReport)

				r.Route("/users/{id}", func(r chi.Router) {
					r.Post("/delete", adminHandler.DeleteUser)
					r.Post("/block", adminHandler.BlockUser)
					r.Get("/impersonate", adminHandler.Impersonate)
				})
			})
		})
	})

	return r
}
