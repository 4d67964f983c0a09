package model

import "errors"

// Error definitions for model package.
var (
	// ErrSymbolNotFound is returned when a symbol cannot be located in the
	// current snapshot.
	ErrSymbolNotFound = errors.New("symbol not found in current model snapshot")

	// ErrFileNotInModel is returned when a file is outside the analyzed scope.
	ErrFileNotInModel = errors.New("file is not part of the analyzed scope")
)
