package cleaner

import (
	"fmt"
	"strings"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/liveness"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Analysis is the immutable result of one read-only pass.
type Analysis struct {
	// Files holds the directly-unused symbols found per file.
	Files []liveness.FileFindings
	// TransitiveMethods are the methods predicted to lose their last caller
	// once the direct findings are removed. They are not part of the first
	// removal batch; the driver picks them up as later passes confirm them.
	TransitiveMethods []model.Symbol
}

// Counts returns the per-category direct finding counts.
func (a *Analysis) Counts() map[classifier.Category]int {
	counts := make(map[classifier.Category]int)
	for _, f := range a.Files {
		counts[classifier.CategoryUnusedImport] += len(f.UnusedImports)
		counts[classifier.CategoryUnusedField] += len(f.UnusedFields)
		counts[classifier.CategoryUnusedClass] += len(f.UnusedClasses)
		counts[classifier.CategoryDeprecatedMethod] += len(f.DeprecatedMethods)
	}
	return counts
}

// Total returns the number of direct findings.
func (a *Analysis) Total() int {
	total := 0
	for _, n := range a.Counts() {
		total += n
	}
	return total
}

// Empty reports whether the analysis found nothing to remove.
func (a *Analysis) Empty() bool {
	return a.Total() == 0
}

// Summary renders the confirmation question shown before the first mutation.
func (a *Analysis) Summary() string {
	counts := a.Counts()

	var parts []string
	appendPart := func(n int, singular, plural string) {
		switch {
		case n == 1:
			parts = append(parts, fmt.Sprintf("1 %s", singular))
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	appendPart(counts[classifier.CategoryDeprecatedMethod],
		"deprecated method", "deprecated methods")
	appendPart(counts[classifier.CategoryUnusedImport],
		"unused import", "unused imports")
	appendPart(counts[classifier.CategoryUnusedField],
		"unused field", "unused fields")
	appendPart(counts[classifier.CategoryUnusedClass],
		"unused class", "unused classes")

	summary := "Remove " + strings.Join(parts, ", ")
	if n := len(a.TransitiveMethods); n == 1 {
		summary += " (1 more method may become unreachable)"
	} else if n > 1 {
		summary += fmt.Sprintf(" (%d more methods may become unreachable)", n)
	}
	return summary + "?"
}
