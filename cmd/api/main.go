package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/workforce-backend-go/internal/config"
	appHTTP "github.com/workpulse/workforce-backend-go/internal/handler/http"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
	"github.com/workpulse/workforce-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workforce-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/workpulse/workforce-backend-go/internal/service/adjustment"
	attendanceService "github.com/workpulse/workforce-backend-go/internal/service/attendance"
	authService "github.com/workpulse/workforce-backend-go/internal/service/auth"
	leaveService "github.com/workpulse/workforce-backend-go/internal/service/leave"
	userService "github.com/workpulse/workforce-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo, sessionRepo, adjustmentRepo, leaveRepo, refreshTokenRepo)
	sessionSvc := attendanceService.NewSessionService(sessionRepo, userRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(db, adjustmentRepo, sessionRepo, userRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(sessionSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		adjustmentHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
