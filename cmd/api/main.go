package main

import (
	"fmt"
	"net/http"

	"github.com/universitio/hr-backend-go/internal/config"
	appHTTP "github.com/universitio/hr-backend-go/internal/handler/http"
	"github.com/universitio/hr-backend-go/internal/pkg/database"
	"github.com/universitio/hr-backend-go/internal/pkg/jwt"
	"github.com/universitio/hr-backend-go/internal/pkg/oauth"
	"github.com/universitio/hr-backend-go/internal/pkg/sse"
	"github.com/universitio/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/universitio/hr-backend-go/internal/service/attendance"
	authService "github.com/universitio/hr-backend-go/internal/service/auth"
	dashboardService "github.com/universitio/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/universitio/hr-backend-go/internal/service/employee"
	leaveService "github.com/universitio/hr-backend-go/internal/service/leave"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	hub := sse.NewHub()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService, cfg.App.AdminEmail)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, hub)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, attendanceRepo, hub)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(jwtService, hub),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
