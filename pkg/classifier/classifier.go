// Package classifier decides, per symbol, whether it is a candidate for a
// removal category based on structural rules. Classification is pure: it
// never consults reference counts, only declaration metadata.
package classifier

import (
	"strings"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/config"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Category is the removal category a symbol is a candidate for.
type Category string

// Removal categories.
const (
	CategoryNone             Category = ""
	CategoryDeprecatedMethod Category = "deprecated-method"
	CategoryUnusedImport     Category = "unused-import"
	CategoryUnusedField      Category = "unused-field"
	CategoryUnusedClass      Category = "unused-class"
)

// redundantImportPrefix marks imports that are never necessary in Java.
const redundantImportPrefix = "java.lang."

// Classifier evaluates candidacy rules configured by the policy table.
type Classifier struct {
	cfg *config.Config
}

// New creates a Classifier from the given configuration. A nil config falls
// back to the defaults.
func New(cfg *config.Config) *Classifier {
	if cfg == nil {
		cfg = config.NewManager().DefaultConfig()
	}
	return &Classifier{cfg: cfg}
}

// Classify returns the removal category the symbol is a candidate for, or
// CategoryNone. Rules are evaluated in priority order; the first match wins.
// The declaring file's symbols are needed to look up the containing class.
func (c *Classifier) Classify(sym model.Symbol, file model.FileSymbols) Category {
	if c.isDeprecatedControllerMethod(sym, file) {
		return CategoryDeprecatedMethod
	}
	if c.isImportCandidate(sym) {
		return CategoryUnusedImport
	}
	if c.isFieldCandidate(sym) {
		return CategoryUnusedField
	}
	if c.isClassCandidate(sym) {
		return CategoryUnusedClass
	}
	return CategoryNone
}

// IsControllerClass reports whether the class is framework-bound: it carries
// a recognized controller annotation or its name contains "Controller".
// Such classes are always preserved since the framework may invoke them
// through indirect binding the reference index cannot see.
func (c *Classifier) IsControllerClass(sym model.Symbol) bool {
	if sym.HasAnyAnnotation(c.cfg.ControllerAnnotations) {
		return true
	}
	return strings.Contains(sym.Name, "Controller")
}

// IsAlwaysRedundantImport reports whether the import is redundant regardless
// of apparent usage (java.lang is imported implicitly).
func IsAlwaysRedundantImport(sym model.Symbol) bool {
	return sym.Kind == model.KindImport && strings.HasPrefix(sym.QualifiedName, redundantImportPrefix)
}

// isDeprecatedControllerMethod matches methods of controller classes that are
// deprecated by annotation, javadoc tag, or naming.
func (c *Classifier) isDeprecatedControllerMethod(sym model.Symbol, file model.FileSymbols) bool {
	if sym.Kind != model.KindMethod {
		return false
	}

	containing := lookupClass(file, sym.ContainingClass)
	if containing == nil || !containing.HasAnyAnnotation(c.cfg.ControllerAnnotations) {
		return false
	}

	if sym.HasAnyAnnotation(c.cfg.DeprecatedAnnotations) {
		return true
	}
	if sym.HasDeprecatedDocTag {
		return true
	}
	return strings.Contains(strings.ToLower(sym.Name), "deprecated")
}

// isImportCandidate matches non-wildcard imports.
func (c *Classifier) isImportCandidate(sym model.Symbol) bool {
	return sym.Kind == model.KindImport && !sym.Wildcard
}

// isFieldCandidate matches fields per the configured field policy. Annotated,
// public, and static fields are never candidates: annotations mean the field
// is presumed framework-managed.
func (c *Classifier) isFieldCandidate(sym model.Symbol) bool {
	if sym.Kind != model.KindField {
		return false
	}
	if sym.Modifiers.Public || sym.Modifiers.Static {
		return false
	}
	if len(sym.Annotations) > 0 {
		return false
	}
	if c.cfg.FieldPolicy == config.FieldPolicyFinalPrivate {
		return sym.Modifiers.Final && sym.Modifiers.Private
	}
	return true
}

// isClassCandidate matches classes per the configured class policy, always
// preserving controller classes.
func (c *Classifier) isClassCandidate(sym model.Symbol) bool {
	if sym.Kind != model.KindClass {
		return false
	}
	if c.IsControllerClass(sym) {
		return false
	}
	if c.cfg.ClassPolicy == config.ClassPolicyNoMethods {
		return sym.MethodCount == 0
	}
	return sym.MethodCount == 0 && sym.FieldCount == 0 && sym.NestedClassCount == 0
}

// lookupClass finds a class symbol in the file by qualified name.
func lookupClass(file model.FileSymbols, qualifiedName string) *model.Symbol {
	if qualifiedName == "" {
		return nil
	}
	for i := range file.Classes {
		if file.Classes[i].QualifiedName == qualifiedName {
			return &file.Classes[i]
		}
	}
	return nil
}
