package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/handler/http/middleware"
	"github.com/timepay/timepay-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &ProfileHandlerImpl{userService: userService}
}

// Get implements ProfileHandler.
func (p *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	profile, err := p.userService.Profile(r.Context(), userID)
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update implements ProfileHandler.
func (p *ProfileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Session required")
		return
	}

	var updateReq user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := p.userService.UpdateProfile(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile updated", "user_id", userID)
	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}
