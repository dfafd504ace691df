package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/auth"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "session" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// SessionClaims returns the verified session claims, or false when the
// request carries none.
func SessionClaims(r *http.Request) (map[string]interface{}, bool) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return nil, false
	}
	claims, err := token.AsMap(r.Context())
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentUserID extracts the authenticated user's id from the session.
func CurrentUserID(r *http.Request) (string, bool) {
	claims, ok := SessionClaims(r)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}
