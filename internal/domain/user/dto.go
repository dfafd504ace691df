package user

import "time"

type UpdateProfileRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	EmployeeID    string  `json:"employee_id"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	MonthlySalary float64 `json:"monthly_salary"`
	OTRate        float64 `json:"ot_rate"`
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	EmployeeID    *string   `json:"employee_id,omitempty"`
	Designation   *string   `json:"designation,omitempty"`
	Department    *string   `json:"department,omitempty"`
	MonthlySalary float64   `json:"monthly_salary"`
	OTRate        float64   `json:"ot_rate"`
	Role          Role      `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		EmployeeID:    u.EmployeeID,
		Designation:   u.Designation,
		Department:    u.Department,
		MonthlySalary: u.MonthlySalary,
		OTRate:        u.OTRate,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
	}
}
