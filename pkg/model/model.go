// Package model defines the symbol data model and the ports to the
// source-tree provider and the project-wide reference index.
package model

import "strings"

// Kind identifies the kind of a declared symbol.
type Kind string

// Symbol kinds.
const (
	KindClass  Kind = "class"
	KindMethod Kind = "method"
	KindField  Kind = "field"
	KindImport Kind = "import"
)

// ID identifies a symbol across model re-reads. It is derived from stable
// symbol attributes, never from a position in a mutable syntax tree, so it
// survives destructive edits between passes.
type ID string

// NewID builds a symbol identity from kind, declaring file, and qualified name.
func NewID(kind Kind, file, qualifiedName string) ID {
	return ID(string(kind) + "|" + file + "|" + qualifiedName)
}

// Modifiers holds the declaration modifiers relevant to removal rules.
type Modifiers struct {
	Public  bool
	Private bool
	Static  bool
	Final   bool
}

// Symbol is a declared program element: class, method, field, or import binding.
type Symbol struct {
	Kind          Kind
	Name          string
	QualifiedName string
	// File is the path of the declaring file.
	File string
	// ContainingClass is the qualified name of the enclosing class, empty for
	// top-level classes and imports.
	ContainingClass string
	Modifiers       Modifiers
	// Annotations holds annotation names as written, simple or fully qualified.
	Annotations []string
	// HasDeprecatedDocTag reports a javadoc @deprecated tag on the declaration.
	HasDeprecatedDocTag bool

	// Overrides reports an explicit supertype/interface override (method only).
	Overrides bool
	// InterfaceMember reports a declaration inside an interface (method only).
	InterfaceMember bool

	// Declared member counts (class only).
	MethodCount      int
	FieldCount       int
	NestedClassCount int

	// Wildcard reports a wildcard import (import only).
	Wildcard bool
}

// ID returns the stable identity of the symbol.
func (s Symbol) ID() ID {
	return NewID(s.Kind, s.File, s.QualifiedName)
}

// SimpleName returns the last dot-separated segment of a possibly qualified name.
func SimpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// HasAnnotation reports whether the symbol carries the named annotation,
// matching by exact name or by simple name on either side.
func (s Symbol) HasAnnotation(name string) bool {
	for _, a := range s.Annotations {
		if a == name || SimpleName(a) == SimpleName(name) {
			return true
		}
	}
	return false
}

// HasAnyAnnotation reports whether the symbol carries any of the named annotations.
func (s Symbol) HasAnyAnnotation(names []string) bool {
	for _, n := range names {
		if s.HasAnnotation(n) {
			return true
		}
	}
	return false
}

// Scope selects the files an operation works on. An empty Files list means
// every source file under Root; a non-empty list restricts the operation to
// exactly those files.
type Scope struct {
	Root  string
	Files []string
}

// FileSymbols groups the symbols declared in one file.
type FileSymbols struct {
	File    string
	Classes []Symbol
	Methods []Symbol
	Fields  []Symbol
	Imports []Symbol
}

// ReferenceSite is one project-wide usage of a symbol.
type ReferenceSite struct {
	Target ID
	File   string
	Line   int
	// EnclosingMethod is the identity of the method whose body contains the
	// reference, empty when the reference is outside any method body. Used to
	// tell self-references apart from external ones.
	EnclosingMethod ID
}

// CallExpr is one call expression inside a method body, before resolution.
type CallExpr struct {
	Caller ID
	File   string
	Line   int
	// Callee is the called name as written, e.g. "helper" or "obj.frob".
	Callee string
}
