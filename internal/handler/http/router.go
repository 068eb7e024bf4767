package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	workerHandler WorkerHandler,
	punchHandler PunchHandler,
	approvalHandler ApprovalHandler,
	shiftHandler ShiftHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/login/pin", authHandler.LoginWithPIN)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(worker.CapabilityWorkerView))
					r.Get("/", workerHandler.List)
					r.Get("/{username}", workerHandler.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", workerHandler.Create)
					r.Put("/{username}", workerHandler.Update)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Post("/clock-in", punchHandler.ClockIn)
				r.Post("/{id}/clock-out", punchHandler.ClockOut)
				r.Get("/", punchHandler.ListOnDate)

				// Manager/admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(worker.CapabilityPunchAdjust))
					r.Get("/review", approvalHandler.ListInRange)
					r.Patch("/{id}", approvalHandler.Adjust)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequireCapability(worker.CapabilityShiftView))
				r.Get("/", shiftHandler.ListInWeek)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(worker.CapabilityShiftManage))
					r.Post("/", shiftHandler.Create)
					r.Delete("/", shiftHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireCapability(worker.CapabilityPayrollView))
				r.Get("/report", payrollHandler.Report)
				r.Get("/report/export", payrollHandler.ExportCSV)
			})
		})
	})
	return r
}
