// Package planner assembles a deduplicated, exclusion-filtered removal batch
// from classifier and liveness output.
package planner

import (
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/liveness"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Batch is a planned removal set, partitioned by category.
type Batch struct {
	Imports           []model.Symbol
	Fields            []model.Symbol
	Classes           []model.Symbol
	DeprecatedMethods []model.Symbol
	TransitiveMethods []model.Symbol
}

// Total returns the number of symbols in the batch.
func (b Batch) Total() int {
	return len(b.Imports) + len(b.Fields) + len(b.Classes) +
		len(b.DeprecatedMethods) + len(b.TransitiveMethods)
}

// Empty reports whether the batch plans no removals.
func (b Batch) Empty() bool {
	return b.Total() == 0
}

// Counts returns the per-category symbol counts.
func (b Batch) Counts() map[classifier.Category]int {
	return map[classifier.Category]int{
		classifier.CategoryUnusedImport:     len(b.Imports),
		classifier.CategoryUnusedField:      len(b.Fields),
		classifier.CategoryUnusedClass:      len(b.Classes),
		classifier.CategoryDeprecatedMethod: len(b.DeprecatedMethods) + len(b.TransitiveMethods),
	}
}

// Symbols returns every symbol of the batch in application order: imports,
// fields, methods, then classes, so member removals never race their
// containing class within one pass.
func (b Batch) Symbols() []model.Symbol {
	out := make([]model.Symbol, 0, b.Total())
	out = append(out, b.Imports...)
	out = append(out, b.Fields...)
	out = append(out, b.DeprecatedMethods...)
	out = append(out, b.TransitiveMethods...)
	out = append(out, b.Classes...)
	return out
}

// Plan builds the removal batch for one pass. Earlier stages already filter
// candidates; Plan re-applies the final exclusions anyway so a bug upstream
// can never put an unremovable symbol into a batch.
func Plan(findings []liveness.FileFindings, transitive []model.Symbol) Batch {
	var batch Batch
	seen := make(map[model.ID]bool)

	add := func(sym model.Symbol, dst *[]model.Symbol) {
		id := sym.ID()
		if seen[id] {
			return
		}
		seen[id] = true
		*dst = append(*dst, sym)
	}

	for _, f := range findings {
		for _, imp := range f.UnusedImports {
			add(imp, &batch.Imports)
		}
		for _, field := range f.UnusedFields {
			if excludedField(field) {
				continue
			}
			add(field, &batch.Fields)
		}
		for _, class := range f.UnusedClasses {
			add(class, &batch.Classes)
		}
		for _, m := range f.DeprecatedMethods {
			if excludedMethod(m) {
				continue
			}
			add(m, &batch.DeprecatedMethods)
		}
	}

	for _, m := range transitive {
		if excludedMethod(m) {
			continue
		}
		add(m, &batch.TransitiveMethods)
	}

	return batch
}

// excludedMethod re-checks the dispatch-safety exclusions.
func excludedMethod(sym model.Symbol) bool {
	return sym.Kind != model.KindMethod || sym.InterfaceMember || sym.Overrides
}

// excludedField re-checks the framework-safety exclusions.
func excludedField(sym model.Symbol) bool {
	return sym.Kind != model.KindField ||
		sym.Modifiers.Public ||
		sym.Modifiers.Static ||
		len(sym.Annotations) > 0
}
