package cleaner

import (
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/applier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
)

// Report aggregates the outcome of one cleanup run. Every run, successful or
// not, yields one.
type Report struct {
	// Removed counts successfully removed symbols per category.
	Removed map[classifier.Category]int `json:"removed"`
	// Skipped counts symbols that were already gone when their turn came.
	Skipped int `json:"skipped"`
	// Failures lists the symbols whose removal failed, with reasons.
	Failures []applier.Failure `json:"failures,omitempty"`
	// PassesRun counts the passes that removed at least one symbol.
	PassesRun int `json:"passes_run"`
}

func newReport() *Report {
	return &Report{Removed: make(map[classifier.Category]int)}
}

// TotalRemoved returns the number of symbols removed across all passes.
func (r *Report) TotalRemoved() int {
	total := 0
	for _, n := range r.Removed {
		total += n
	}
	return total
}
