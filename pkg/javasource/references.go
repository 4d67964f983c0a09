package javasource

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

var callRe = regexp.MustCompile(`(\w+)\s*\(`)

// callKeywords are the Java keywords that look like call sites to callRe.
var callKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"return": true, "new": true, "super": true, "this": true,
	"synchronized": true, "assert": true, "do": true, "else": true,
	"try": true, "throw": true,
}

// References scans for usages of the symbol by name. Imports and private
// fields can only be used inside their own file; everything else, including
// package-private and protected fields, is searched across the whole tree.
// Comment and string contents never count, and neither does the declaration
// itself.
func (p *Provider) References(sym model.Symbol) ([]model.ReferenceSite, error) {
	var files []string
	switch {
	case sym.Kind == model.KindImport,
		sym.Kind == model.KindField && sym.Modifiers.Private:
		files = []string{sym.File}
	default:
		var err error
		files, err = p.walk(p.root)
		if err != nil {
			return nil, err
		}
	}

	matcher, err := referenceMatcher(sym)
	if err != nil {
		return nil, err
	}

	var refs []model.ReferenceSite
	for _, file := range files {
		pf, err := p.parsed(file)
		if err != nil {
			return nil, err
		}

		var decl *span
		if file == sym.File {
			decl = pf.find(sym.ID())
		}

		for lineNo, text := range pf.code {
			if decl != nil && lineNo >= decl.start && lineNo <= decl.decl {
				continue
			}
			trimmed := strings.TrimSpace(text)
			if sym.Kind == model.KindImport &&
				(importRe.MatchString(trimmed) || packageRe.MatchString(trimmed)) {
				continue
			}

			for range matcher.FindAllStringIndex(text, -1) {
				refs = append(refs, model.ReferenceSite{
					Target:          sym.ID(),
					File:            file,
					Line:            lineNo + 1,
					EnclosingMethod: pf.enclosingMethod(lineNo),
				})
			}
		}
	}
	return refs, nil
}

// referenceMatcher builds the usage pattern for a symbol. Methods only count
// when called or taken as a method reference; other kinds count on any
// whole-word mention.
func referenceMatcher(sym model.Symbol) (*regexp.Regexp, error) {
	name := regexp.QuoteMeta(sym.Name)
	var pattern string
	if sym.Kind == model.KindMethod {
		pattern = `\b` + name + `\s*\(|::\s*` + name + `\b`
	} else {
		pattern = `\b` + name + `\b`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad symbol name %q: %w", sym.Name, err)
	}
	return re, nil
}

// Calls returns the call expressions found in the method's body.
func (p *Provider) Calls(method model.Symbol) ([]model.CallExpr, error) {
	pf, err := p.parsed(method.File)
	if err != nil {
		return nil, err
	}

	s := pf.find(method.ID())
	if s == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrSymbolNotFound, method.QualifiedName)
	}

	var calls []model.CallExpr
	for lineNo := s.decl; lineNo <= s.end && lineNo < len(pf.code); lineNo++ {
		text := pf.code[lineNo]
		if lineNo == s.decl {
			// only the part after the signature's opening brace is body
			idx := strings.Index(text, "{")
			if idx < 0 {
				continue
			}
			text = text[idx+1:]
		}

		for _, m := range callRe.FindAllStringSubmatchIndex(text, -1) {
			name := text[m[2]:m[3]]
			if callKeywords[name] {
				continue
			}
			if isConstructorCall(text[:m[2]]) {
				continue
			}
			calls = append(calls, model.CallExpr{
				Caller: method.ID(),
				File:   method.File,
				Line:   lineNo + 1,
				Callee: name,
			})
		}
	}
	return calls, nil
}

// isConstructorCall reports whether the text before a call-shaped token ends
// in the new keyword, as in "new Foo(".
func isConstructorCall(before string) bool {
	fields := strings.Fields(before)
	return len(fields) > 0 && fields[len(fields)-1] == "new"
}

// ResolveCall binds a call expression to a method declaration. Resolution is
// deliberately conservative: a method of the caller's own class wins, then a
// project-wide unique match on the simple name; anything ambiguous stays
// unresolved so nothing gets removed on its account.
func (p *Provider) ResolveCall(call model.CallExpr) (*model.Symbol, error) {
	callee := model.SimpleName(call.Callee)

	callerFile, callerClass := callerLocation(call.Caller)
	if callerFile != "" {
		// a caller file that cannot be read just falls through to the
		// project-wide search
		if pf, err := p.parsed(callerFile); err == nil {
			for _, m := range pf.methods {
				if m.sym.Name == callee && m.sym.ContainingClass == callerClass {
					sym := m.sym
					return &sym, nil
				}
			}
		}
	}

	files, err := p.walk(p.root)
	if err != nil {
		return nil, err
	}

	var found *model.Symbol
	for _, file := range files {
		pf, err := p.parsed(file)
		if err != nil {
			return nil, err
		}
		for _, m := range pf.methods {
			if m.sym.Name != callee {
				continue
			}
			if found != nil && found.ID() != m.sym.ID() {
				return nil, nil
			}
			sym := m.sym
			found = &sym
		}
	}
	return found, nil
}

// callerLocation extracts the file and containing class encoded in a method
// identity.
func callerLocation(id model.ID) (file, class string) {
	parts := strings.SplitN(string(id), "|", 3)
	if len(parts) != 3 {
		return "", ""
	}
	file = parts[1]
	qualified := parts[2]
	if i := strings.LastIndex(qualified, "#"); i >= 0 {
		class = qualified[:i]
	}
	return file, class
}
