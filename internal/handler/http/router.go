package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LoginLimiter   *middleware.IPRateLimiter
}

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Dashboard    DashboardHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Task         TaskHandler
	Announcement AnnouncementHandler
	SuperAdmin   SuperAdminHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, userRepository user.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"name":   "Dayflow HRMS API",
			"status": "running",
		})
	})

	authenticated := []func(http.Handler) http.Handler{
		jwtauth.Verifier(JWTService.JWTAuth()),
		middleware.AuthRequired(userRepository),
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			// Public
			r.Post("/", h.Auth.Register)
			r.With(middleware.RateLimit(cfg.LoginLimiter)).Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticated...)

				r.With(middleware.RequirePermission(user.PermissionEmployeeManage), middleware.RequireCompany).
					Post("/create", h.User.CreateEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.User.List)

				r.Get("/profile", h.User.GetProfile)
				r.Put("/profile", h.User.UpdateProfile)
				r.Get("/dashboard/stats", h.Dashboard.GetStats)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.User.GetByID)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
						r.Put("/", h.User.Update)
						r.Delete("/", h.User.Delete)
					})
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(authenticated...)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.ListMine)

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.ListCompany)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.ListMine)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListCompany)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}", h.Leave.UpdateStatus)
				r.Delete("/{id}", h.Leave.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.With(middleware.RequirePermission(user.PermissionTaskManage), middleware.RequireCompany).
					Post("/", h.Task.Create)
				r.Get("/my", h.Task.ListMine)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Task.GetByID)
					r.Put("/", h.Task.Update)
					r.With(middleware.RequirePermission(user.PermissionTaskManage)).Delete("/", h.Task.Delete)
					r.Post("/comment", h.Task.AddComment)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAnnouncementManage))
					r.With(middleware.RequireCompany).Post("/", h.Announcement.Create)
					r.Put("/{id}", h.Announcement.Update)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			// SuperAdmin only
			r.Route("/superadmin", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)

				r.Get("/companies", h.SuperAdmin.ListCompanies)
				r.Get("/companies/{id}", h.SuperAdmin.GetCompanyDetails)
				r.Delete("/companies/{id}", h.SuperAdmin.DeleteCompany)
				r.Get("/admins", h.SuperAdmin.ListAdmins)
				r.Get("/stats", h.SuperAdmin.GetSystemStats)
				r.Put("/users/{id}", h.SuperAdmin.UpdateUser)
			})
		})
	})
	return r
}

// allowsAnyOrigin reports whether origins contains the "*" wildcard, which
// browsers refuse to combine with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
