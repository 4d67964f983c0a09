package model

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=ports.go -destination=mockports.gen.go -package=model

// CodeModel is the source-tree provider port. Implementations own the parsed
// representation of the project; callers never hold references into it across
// a Refresh or Delete.
type CodeModel interface {
	// ListFiles returns the source files in the given scope.
	ListFiles(scope Scope) ([]string, error)

	// Symbols returns the symbols declared in a file, parsed from the current
	// snapshot.
	Symbols(file string) (FileSymbols, error)

	// Calls returns the call expressions inside a method body.
	Calls(method Symbol) ([]CallExpr, error)

	// ResolveCall resolves a call expression to its target method declaration.
	// A nil result with nil error means the call target is outside the
	// analyzed scope; callers must treat it conservatively.
	ResolveCall(call CallExpr) (*Symbol, error)

	// IsValid reports whether the symbol still exists in the current snapshot.
	IsValid(sym Symbol) (bool, error)

	// Delete removes the symbol's declaration from its file. Destructive.
	Delete(sym Symbol) error

	// Refresh discards any cached snapshot so the next read re-parses the
	// sources. Called at every pass boundary.
	Refresh()
}

// ReferenceIndex is the project-wide reference search port.
type ReferenceIndex interface {
	// References returns every reference site of the symbol across the
	// project, including references from the symbol's own body.
	References(sym Symbol) ([]ReferenceSite, error)
}
