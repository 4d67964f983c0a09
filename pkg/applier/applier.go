// Package applier deletes planned symbols from the model, one at a time,
// tolerating per-item failure.
package applier

import (
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/logger"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Failure records one symbol whose deletion failed.
type Failure struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// Result aggregates the outcome of applying one group of removals.
type Result struct {
	Removed  int
	Skipped  int
	Failures []Failure
}

// Applier applies removals against the code model.
type Applier struct {
	codeModel model.CodeModel
	logger    logger.Logger
}

// NewApplier creates an Applier over the given model.
func NewApplier(codeModel model.CodeModel, log logger.Logger) *Applier {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Applier{codeModel: codeModel, logger: log}
}

// Apply deletes every given symbol. A symbol that is no longer valid
// (already removed transitively, e.g. a field inside a just-deleted class) is
// skipped silently; a deletion error is recorded and the batch continues.
func (a *Applier) Apply(symbols []model.Symbol) Result {
	var result Result

	for _, sym := range symbols {
		valid, err := a.codeModel.IsValid(sym)
		if err != nil {
			result.Failures = append(result.Failures, Failure{
				Symbol: sym.QualifiedName,
				Reason: err.Error(),
			})
			continue
		}
		if !valid {
			result.Skipped++
			continue
		}

		if err := a.codeModel.Delete(sym); err != nil {
			a.logger.Logf("failed to remove %s: %v", sym.QualifiedName, err)
			result.Failures = append(result.Failures, Failure{
				Symbol: sym.QualifiedName,
				Reason: err.Error(),
			})
			continue
		}

		a.logger.Logf("removed %s %s", sym.Kind, sym.QualifiedName)
		result.Removed++
	}

	return result
}
