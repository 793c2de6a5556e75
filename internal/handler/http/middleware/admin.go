package middleware

import (
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
)

// SuperAdminOnly gates the platform console.
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := access.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsSuperAdmin() {
			response.Forbidden(w, "Access denied. SuperAdmin only.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
