package prompt

import "errors"

// Error definitions for prompt package.
var (
	// ErrInvalidConfirmationInput is returned when the user enters something
	// other than a yes/no answer.
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y', 'n', or press Enter for default")
)
