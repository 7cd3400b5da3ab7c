package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", userHandler.GetMe)
				r.Put("/me", userHandler.UpdateMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.GetByID)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", attendanceHandler.CheckIn)
				r.Put("/checkout", attendanceHandler.CheckOut)
				r.Get("/my-all", attendanceHandler.GetMySessions)
				r.Get("/my-stats/weekly", attendanceHandler.GetMyWeeklyStats)
				r.Get("/my-stats/monthly", attendanceHandler.GetMyMonthlyStats)

				r.Route("/adjustments", func(r chi.Router) {
					r.Post("/request", adjustmentHandler.Request)
					r.Get("/my-all", adjustmentHandler.GetMyAdjustments)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Get("/pending", adjustmentHandler.ListPending)
						r.Put("/{id}/approve", adjustmentHandler.Approve)
						r.Put("/{id}/reject", adjustmentHandler.Reject)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/user/{userID}/all", attendanceHandler.GetUserSessions)
					r.Get("/user/{userID}/stats/weekly", attendanceHandler.GetUserWeeklyStats)
					r.Get("/user/{userID}/stats/monthly", attendanceHandler.GetUserMonthlyStats)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/apply", leaveHandler.Apply)
				r.Get("/my-leaves", leaveHandler.GetMyLeaves)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", leaveHandler.ListPending)
					r.Put("/{leaveID}", leaveHandler.Process)
				})
			})
		})
	})
	return r
}
