package overtime

import "errors"

// Overtime domain errors
var (
	ErrDuplicateDate    = errors.New("overtime entry for this date already exists")
	ErrFutureDate       = errors.New("cannot select a future date")
	ErrNegativeHours    = errors.New("hours must be a non-negative number")
	ErrOvertimeNotFound = errors.New("overtime record not found")
	ErrNotOwner         = errors.New("overtime record belongs to another user")
)
