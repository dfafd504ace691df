package jwt

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

// Service signs and verifies session tokens. The token travels in an
// HttpOnly cookie named "jwt", which jwtauth's verifier picks up by
// default, so the session surface is a plain session cookie.
type Service interface {
	// GenerateSessionToken signs a session token for u. impersonatorID is
	// the admin's user id when the session was issued via impersonation,
	// empty otherwise.
	GenerateSessionToken(u user.User, impersonatorID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	tokenAuth             *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(u user.User, impersonatorID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"type":    "session",
		"exp":     expiresAt,
	}
	if impersonatorID != "" {
		claims["impersonator_id"] = impersonatorID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
