package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{UserRepository: userRepository}
}

// Profile implements user.UserService.
func (s *UserServiceImpl) Profile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.NewProfileResponse(u), nil
}

func validateProfile(req user.UpdateProfileRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(req.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 2-20 characters"})
	}
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsValidEmployeeID(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be 2-20 characters"})
	}
	if req.MonthlySalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be a non-negative number"})
	}
	if req.OTRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "ot_rate", Message: "must be a non-negative number"})
	}

	return errs
}

// UpdateProfile implements user.UserService. Changed pay parameters take
// effect on every later calculation; stored records only hold hours and
// status, never money.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if errs := validateProfile(req); len(errs) > 0 {
		return user.ProfileResponse{}, errs
	}

	current, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if req.Username != current.Username {
		if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err == nil {
			return user.ProfileResponse{}, user.ErrUsernameTaken
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
	}
	if req.Email != current.Email {
		if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
			return user.ProfileResponse{}, user.ErrEmailTaken
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
	}
	if current.EmployeeID == nil || req.EmployeeID != *current.EmployeeID {
		if _, err := s.UserRepository.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
			return user.ProfileResponse{}, user.ErrEmployeeIDTaken
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, fmt.Errorf("failed to check employee id: %w", err)
		}
	}

	current.Username = req.Username
	current.Email = req.Email
	current.EmployeeID = &req.EmployeeID
	current.Designation = &req.Designation
	current.Department = &req.Department
	current.MonthlySalary = req.MonthlySalary
	current.OTRate = req.OTRate

	if err := s.UserRepository.UpdateProfile(ctx, current); err != nil {
		return user.ProfileResponse{}, err
	}

	return user.NewProfileResponse(current), nil
}
