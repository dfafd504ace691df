package middleware

import (
	"net/http"

	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

// AccessDeniedMessage is flashed when a non-admin reaches an admin route.
const AccessDeniedMessage = "Access Denied. Super Admin only."

// SuperAdminOnly gates the admin surface. A signed-in non-admin is sent
// back to the dashboard with a flash notice, not an error body.
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionClaims(r)
		if !ok {
			response.SeeOtherWithFlash(w, r, "/dashboard", response.FlashDanger, AccessDeniedMessage)
			return
		}

		role, _ := claims["role"].(string)
		if user.Role(role) != user.RoleSuperAdmin {
			response.SeeOtherWithFlash(w, r, "/dashboard", response.FlashDanger, AccessDeniedMessage)
			return
		}

		next.ServeHTTP(w, r)
	})
}
