package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/universitio/hr-backend-go/internal/domain/user"
	"github.com/universitio/hr-backend-go/internal/handler/http/response"
)

// AdminOnly restricts a route group to sessions carrying the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
