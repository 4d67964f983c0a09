// Package javasource is the default source-tree adapter: a lightweight,
// line-oriented Java parser implementing the model.CodeModel and
// model.ReferenceIndex ports over a directory of source files.
package javasource

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/fs"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// Provider implements model.CodeModel and model.ReferenceIndex over a source
// tree root. Parsed files are cached until Refresh or Delete invalidates them.
type Provider struct {
	fs         fs.FS
	root       string
	extensions []string

	mu    sync.Mutex
	cache map[string]*parsedFile
}

// NewProvider creates a provider rooted at the given directory. Extensions
// default to ".java".
func NewProvider(filesystem fs.FS, root string, extensions []string) *Provider {
	if len(extensions) == 0 {
		extensions = []string{".java"}
	}
	return &Provider{
		fs:         filesystem,
		root:       root,
		extensions: extensions,
		cache:      make(map[string]*parsedFile),
	}
}

// ListFiles returns the source files in scope. A non-empty scope file list
// restricts the result to those files; otherwise the scope root (or the
// provider root) is walked recursively.
func (p *Provider) ListFiles(scope model.Scope) ([]string, error) {
	if len(scope.Files) > 0 {
		var out []string
		for _, f := range scope.Files {
			if p.hasSourceExtension(f) {
				out = append(out, f)
			}
		}
		return out, nil
	}

	root := scope.Root
	if root == "" {
		root = p.root
	}
	return p.walk(root)
}

// Symbols returns the declared symbols of a file from the current snapshot.
func (p *Provider) Symbols(file string) (model.FileSymbols, error) {
	pf, err := p.parsed(file)
	if err != nil {
		return model.FileSymbols{}, err
	}

	syms := model.FileSymbols{File: file}
	for _, s := range pf.classes {
		syms.Classes = append(syms.Classes, s.sym)
	}
	for _, s := range pf.methods {
		syms.Methods = append(syms.Methods, s.sym)
	}
	for _, s := range pf.fields {
		syms.Fields = append(syms.Fields, s.sym)
	}
	for _, s := range pf.imports {
		syms.Imports = append(syms.Imports, s.sym)
	}
	return syms, nil
}

// IsValid reports whether the symbol still exists in the current snapshot.
func (p *Provider) IsValid(sym model.Symbol) (bool, error) {
	exists, err := p.fs.Exists(sym.File)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	pf, err := p.parsed(sym.File)
	if err != nil {
		return false, err
	}
	return pf.find(sym.ID()) != nil, nil
}

// Delete removes the symbol's declaration, including its attached annotations
// and javadoc, and writes the file atomically.
func (p *Provider) Delete(sym model.Symbol) error {
	p.invalidate(sym.File)

	pf, err := p.parsed(sym.File)
	if err != nil {
		return err
	}

	s := pf.find(sym.ID())
	if s == nil {
		return fmt.Errorf("%w: %s", model.ErrSymbolNotFound, sym.QualifiedName)
	}

	lines := make([]string, 0, len(pf.lines))
	lines = append(lines, pf.lines[:s.start]...)
	lines = append(lines, pf.lines[s.end+1:]...)

	content := strings.Join(lines, "\n")
	if err := p.fs.WriteFileAtomic(sym.File, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", sym.File, err)
	}

	p.invalidate(sym.File)
	return nil
}

// Refresh discards the cached snapshot. The next read re-parses the sources.
func (p *Provider) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]*parsedFile)
}

func (p *Provider) parsed(file string) (*parsedFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pf, ok := p.cache[file]; ok {
		return pf, nil
	}

	data, err := p.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	pf := parseFile(file, data)
	p.cache[file] = pf
	return pf, nil
}

func (p *Provider) invalidate(file string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, file)
}

func (p *Provider) hasSourceExtension(file string) bool {
	for _, ext := range p.extensions {
		if strings.HasSuffix(file, ext) {
			return true
		}
	}
	return false
}

// walk lists source files under root recursively, in deterministic order.
func (p *Provider) walk(root string) ([]string, error) {
	entries, err := p.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(root, name)
		if entry.IsDir() {
			sub, err := p.walk(path)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}
		if p.hasSourceExtension(name) {
			out = append(out, path)
		}
	}

	sort.Strings(out)
	return out, nil
}
