package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Username validation: 2-20 chars, letters, digits, ., _, -
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{2,20}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// Employee ID validation: 2-20 chars, letters, digits, -
var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9-]{2,20}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Clock time validation (HH:MM)
func IsValidClockTime(timeStr string) (time.Time, bool) {
	t, err := time.Parse("15:04", timeStr)
	return t, err == nil
}
