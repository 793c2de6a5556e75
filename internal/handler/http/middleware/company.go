package middleware

import (
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
)

// RequireCompany rejects actors without a tenant, i.e. the SuperAdmin, on
// routes that create company records.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := access.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if _, err := access.RequireTenant(actor); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
