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

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/brewhr/brewhr-backend-go/internal/handler/http/middleware"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Consumption ConsumptionHandler
	Espresso    EspressoHandler
	SSE         SSEHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brewhr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// The stream authenticates itself with a short-lived query token.
		r.Get("/events", h.SSE.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/sse-token", h.Auth.SSEToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)

				r.Get("/{id}/attendance-summary", h.Attendance.MonthSummary)
				r.Get("/{id}/allowances", h.Consumption.Allowance)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/", h.Attendance.List)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/approve", h.Leave.Approve)
				r.Post("/{id}/deny", h.Leave.Deny)
				r.Post("/{id}/convert-to-unpaid", h.Leave.ConvertToUnpaid)
				r.Delete("/{id}", h.Leave.Delete)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/generate", h.Payroll.Generate)
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)
				r.Put("/{id}", h.Payroll.Update)
				r.Post("/{id}/mark-paid", h.Payroll.MarkPaid)
				r.Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/consumption", func(r chi.Router) {
				r.Post("/", h.Consumption.Log)
				r.Get("/", h.Consumption.List)
			})

			r.Route("/espresso", func(r chi.Router) {
				r.Post("/pulls", h.Espresso.LogPull)
				r.Get("/leaderboard", h.Espresso.Leaderboard)
			})
		})
	})

	return r
}
