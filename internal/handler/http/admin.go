package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/auth"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
	"github.com/timepay/timepay-backend-go/internal/pkg/jwt"
)

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	BlockUser(w http.ResponseWriter, r *http.Request)
	Impersonate(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	jwtService   jwt.Service
	adminService admin.AdminService
	authService  auth.AuthService
}

func NewAdminHandler(jwtService jwt.Service, adminService admin.AdminService, authService auth.AuthService) AdminHandler {
	return &AdminHandlerImpl{
		jwtService:   jwtService,
		adminService: adminService,
		authService:  authService,
	}
}

// Dashboard implements AdminHandler.
func (a *AdminHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := a.adminService.Dashboard(r.Context())
	if err != nil {
		slog.Error("AdminDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// DeleteUser implements AdminHandler. A protected target sends the admin
// back with a notice instead of failing hard.
func (a *AdminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	if err := a.adminService.DeleteUser(r.Context(), targetID); err != nil {
		if errors.Is(err, user.ErrSuperAdminProtected) {
			response.SeeOtherWithFlash(w, r, "/admin/dashboard", response.FlashDanger, "Cannot delete a Super Admin account.")
			return
		}
		slog.Error("DeleteUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted", "target_user_id", targetID)
	response.SuccessWithMessage(w, "User and all associated records deleted", nil)
}

// BlockUser implements AdminHandler.
func (a *AdminHandlerImpl) BlockUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	blocked, err := a.adminService.ToggleUserBlocked(r.Context(), targetID)
	if err != nil {
		if errors.Is(err, user.ErrSuperAdminProtected) {
			response.SeeOtherWithFlash(w, r, "/admin/dashboard", response.FlashDanger, "Cannot block a Super Admin account.")
			return
		}
		slog.Error("BlockUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	message := "User unblocked"
	if blocked {
		message = "User blocked"
	}
	slog.Info(message, "target_user_id", targetID)
	response.SuccessWithMessage(w, message, map[string]bool{"is_blocked": blocked})
}

// Impersonate implements AdminHandler. The admin's session cookie is
// replaced with one for the target; getting back means logging in again.
func (a *AdminHandlerImpl) Impersonate(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	targetID := chi.URLParam(r, "id")
	session, err := a.authService.Impersonate(r.Context(), adminID, targetID)
	if err != nil {
		slog.Error("Impersonate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(session.Token, session.ExpiresAt))
	slog.Info("Impersonation started", "admin_id", adminID, "target_user_id", targetID)
	response.SeeOtherWithFlash(w, r, "/dashboard", response.FlashInfo,
		"You are now logged in as "+session.User.Username+".")
}
