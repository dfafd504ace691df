package overtime

import "context"

// OvertimeService covers the overtime timesheet operations.
type OvertimeService interface {
	// Add records overtime hours for a past-or-today date. Adding overtime
	// for a day with no attendance row also marks that day Present.
	Add(ctx context.Context, userID string, req AddOvertimeRequest) (OvertimeResponse, error)

	// List returns every record the caller ever created
	List(ctx context.Context, userID string) ([]OvertimeResponse, error)

	// Delete removes one of the caller's own records
	Delete(ctx context.Context, userID, overtimeID string) error
}
