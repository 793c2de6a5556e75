package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired runs after jwtauth.Verifier. It rejects missing or invalid
// access tokens, reloads the user so role and company reflect the current
// record rather than the token, and stores the actor on the request context.
func AuthRequired(users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Not authorized, no token")
				return
			}

			claims, err := jwt.ClaimsFromToken(token)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				slog.Error("AuthRequired load user error", "error", err, "user_id", claims.UserID)
				response.HandleError(w, err)
				return
			}

			ctx := access.WithActor(r.Context(), access.ActorFromUser(u))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
