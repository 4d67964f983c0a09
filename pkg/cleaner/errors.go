package cleaner

import "errors"

var (
	// ErrCleanupAlreadyRunning is returned when an operation is requested
	// while another one holds the model.
	ErrCleanupAlreadyRunning = errors.New("another cleanup operation is already running")

	// ErrModelRead is returned when the code model or reference index fails
	// mid-analysis. No mutation is attempted.
	ErrModelRead = errors.New("code model read failed")

	// ErrConfirmation is returned when the confirmation prompt itself fails.
	ErrConfirmation = errors.New("confirmation failed")
)
