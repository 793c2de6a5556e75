package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hr/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/cron"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	announcementService "github.com/dayflow-hr/hrms-backend-go/internal/service/announcement"
	attendanceService "github.com/dayflow-hr/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hr/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hr/hrms-backend-go/internal/service/dashboard"
	leaveService "github.com/dayflow-hr/hrms-backend-go/internal/service/leave"
	superAdminService "github.com/dayflow-hr/hrms-backend-go/internal/service/superadmin"
	taskService "github.com/dayflow-hr/hrms-backend-go/internal/service/task"
	userService "github.com/dayflow-hr/hrms-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	transactor := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	superAdminRepo := postgresql.NewSuperAdminRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := serviceAuth.NewAuthService(transactor, userRepo, companyRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	superAdminSvc := superAdminService.NewSuperAdminService(superAdminRepo, companyRepo, userRepo)

	loginLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.LoginPerSecond), cfg.RateLimit.LoginBurst)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LoginLimiter:   loginLimiter,
	}, JWTService, userRepo, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		SuperAdmin:   appHTTP.NewSuperAdminHandler(superAdminSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAnnouncementJobs(announcementRepo).RegisterJobs(scheduler)
	cron.NewLimiterJobs(loginLimiter, 10*time.Minute, cfg.RateLimit.IdleTTL).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
