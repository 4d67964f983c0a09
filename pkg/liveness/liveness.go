// Package liveness computes which candidate symbols are unreachable,
// including symbols that only become unreachable after earlier removals.
package liveness

import (
	"fmt"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/logger"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Analyzer performs read-only liveness analysis over a model snapshot.
type Analyzer struct {
	codeModel model.CodeModel
	refs      model.ReferenceIndex
	cls       *classifier.Classifier
	logger    logger.Logger
}

// NewAnalyzer creates a liveness analyzer over the given ports.
func NewAnalyzer(codeModel model.CodeModel, refs model.ReferenceIndex, cls *classifier.Classifier, log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	if cls == nil {
		cls = classifier.New(nil)
	}
	return &Analyzer{
		codeModel: codeModel,
		refs:      refs,
		cls:       cls,
		logger:    log,
	}
}

// FileFindings holds the directly-unused symbols of one file, per category.
type FileFindings struct {
	File              string
	UnusedImports     []model.Symbol
	UnusedFields      []model.Symbol
	UnusedClasses     []model.Symbol
	DeprecatedMethods []model.Symbol
}

// Empty reports whether the file has no findings.
func (f FileFindings) Empty() bool {
	return len(f.UnusedImports) == 0 &&
		len(f.UnusedFields) == 0 &&
		len(f.UnusedClasses) == 0 &&
		len(f.DeprecatedMethods) == 0
}

// ExternalReferenceCount counts the references to a symbol from outside its
// own body. A method referencing itself does not keep itself alive.
func (a *Analyzer) ExternalReferenceCount(sym model.Symbol) (int, error) {
	refs, err := a.refs.References(sym)
	if err != nil {
		return 0, fmt.Errorf("failed to find references for %s: %w", sym.QualifiedName, err)
	}

	count := 0
	for _, r := range refs {
		if r.EnclosingMethod != sym.ID() {
			count++
		}
	}
	return count, nil
}

// AnalyzeFile classifies every symbol of one file and confirms direct
// unused-ness: a candidate is unused when it has zero external references.
func (a *Analyzer) AnalyzeFile(file string) (FileFindings, error) {
	syms, err := a.codeModel.Symbols(file)
	if err != nil {
		return FileFindings{}, fmt.Errorf("failed to read symbols of %s: %w", file, err)
	}

	findings := FileFindings{File: file}

	for _, imp := range syms.Imports {
		if a.cls.Classify(imp, syms) != classifier.CategoryUnusedImport {
			continue
		}
		// java.lang imports are redundant whatever the code looks like
		if classifier.IsAlwaysRedundantImport(imp) {
			findings.UnusedImports = append(findings.UnusedImports, imp)
			continue
		}
		unused, err := a.isUnused(imp)
		if err != nil {
			return FileFindings{}, err
		}
		if unused {
			findings.UnusedImports = append(findings.UnusedImports, imp)
		}
	}

	for _, field := range syms.Fields {
		if a.cls.Classify(field, syms) != classifier.CategoryUnusedField {
			continue
		}
		unused, err := a.isUnused(field)
		if err != nil {
			return FileFindings{}, err
		}
		if unused {
			findings.UnusedFields = append(findings.UnusedFields, field)
		}
	}

	for _, class := range syms.Classes {
		if a.cls.Classify(class, syms) != classifier.CategoryUnusedClass {
			continue
		}
		unused, err := a.isUnused(class)
		if err != nil {
			return FileFindings{}, err
		}
		if unused {
			findings.UnusedClasses = append(findings.UnusedClasses, class)
		}
	}

	for _, method := range syms.Methods {
		if a.cls.Classify(method, syms) != classifier.CategoryDeprecatedMethod {
			continue
		}
		if !removableMethod(method) {
			continue
		}
		unused, err := a.isUnused(method)
		if err != nil {
			return FileFindings{}, err
		}
		if unused {
			findings.DeprecatedMethods = append(findings.DeprecatedMethods, method)
		}
	}

	return findings, nil
}

// AnalyzeFiles runs AnalyzeFile over every file, keeping only files with findings.
func (a *Analyzer) AnalyzeFiles(files []string) ([]FileFindings, error) {
	var out []FileFindings
	for _, file := range files {
		findings, err := a.AnalyzeFile(file)
		if err != nil {
			return nil, err
		}
		if !findings.Empty() {
			out = append(out, findings)
		}
	}
	return out, nil
}

// FindUnusedImports returns the unused imports of each file.
func (a *Analyzer) FindUnusedImports(files []string) (map[string][]model.Symbol, error) {
	return a.findPerFile(files, func(f FileFindings) []model.Symbol { return f.UnusedImports })
}

// FindUnusedFields returns the unused candidate fields of each file.
func (a *Analyzer) FindUnusedFields(files []string) (map[string][]model.Symbol, error) {
	return a.findPerFile(files, func(f FileFindings) []model.Symbol { return f.UnusedFields })
}

// FindUnusedClasses returns the unused candidate classes of each file.
func (a *Analyzer) FindUnusedClasses(files []string) (map[string][]model.Symbol, error) {
	return a.findPerFile(files, func(f FileFindings) []model.Symbol { return f.UnusedClasses })
}

// FindUnusedDeprecatedMethods returns the unreferenced deprecated controller
// methods of each file.
func (a *Analyzer) FindUnusedDeprecatedMethods(files []string) (map[string][]model.Symbol, error) {
	return a.findPerFile(files, func(f FileFindings) []model.Symbol { return f.DeprecatedMethods })
}

func (a *Analyzer) findPerFile(files []string, pick func(FileFindings) []model.Symbol) (map[string][]model.Symbol, error) {
	out := make(map[string][]model.Symbol)
	for _, file := range files {
		findings, err := a.AnalyzeFile(file)
		if err != nil {
			return nil, err
		}
		if syms := pick(findings); len(syms) > 0 {
			out[file] = syms
		}
	}
	return out, nil
}

func (a *Analyzer) isUnused(sym model.Symbol) (bool, error) {
	count, err := a.ExternalReferenceCount(sym)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// removableMethod reports whether liveness analysis is allowed to remove the
// method at all. Interface members and overrides stay: removing them could
// break virtual dispatch contracts for call sites the index cannot see.
func removableMethod(sym model.Symbol) bool {
	return !sym.InterfaceMember && !sym.Overrides
}
