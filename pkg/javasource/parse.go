package javasource

import (
	"regexp"
	"strings"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

var (
	packageRe    = regexp.MustCompile(`^package\s+([\w.]+)\s*;`)
	importRe     = regexp.MustCompile(`^import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;`)
	typeRe       = regexp.MustCompile(`^((?:(?:public|protected|private|abstract|static|final|strictfp)\s+)*)(class|interface|enum)\s+(\w+)`)
	annotationRe = regexp.MustCompile(`^@([\w.]+)`)
	methodRe     = regexp.MustCompile(`^((?:(?:public|protected|private|abstract|static|final|synchronized|native|default)\s+)*)(?:<[^>]*>\s*)?([\w.<>\[\]?,\s]+?)\s+(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[\w.,\s]+?)?\s*(\{|;)\s*$`)
	fieldRe      = regexp.MustCompile(`^((?:(?:public|protected|private|static|final|transient|volatile)\s+)*)([\w.<>\[\]?,\s]+?)\s+(\w+)\s*(?:=[^;]*)?;\s*$`)
)

// span locates one declaration in a file. start includes the attached
// annotations and javadoc; end is the closing brace line for braced
// declarations and the declaration line otherwise. Line numbers are 0-based.
type span struct {
	sym   model.Symbol
	start int
	decl  int
	end   int
}

// parsedFile is one file's snapshot: raw lines, comment/string-blanked code
// lines, and the declaration spans found in it.
type parsedFile struct {
	path    string
	lines   []string
	code    []string
	pkg     string
	imports []span
	classes []span
	fields  []span
	methods []span
}

// spans returns every declaration span of the file.
func (pf *parsedFile) spans() []span {
	out := make([]span, 0, len(pf.imports)+len(pf.classes)+len(pf.fields)+len(pf.methods))
	out = append(out, pf.imports...)
	out = append(out, pf.classes...)
	out = append(out, pf.fields...)
	out = append(out, pf.methods...)
	return out
}

// find locates a declaration by symbol identity.
func (pf *parsedFile) find(id model.ID) *span {
	for _, s := range pf.spans() {
		if s.sym.ID() == id {
			return &s
		}
	}
	return nil
}

// enclosingMethod returns the identity of the method whose body contains the
// line, or the empty ID.
func (pf *parsedFile) enclosingMethod(line int) model.ID {
	for _, m := range pf.methods {
		if line > m.decl && line <= m.end {
			return m.sym.ID()
		}
	}
	return ""
}

type classInfo struct {
	sym              model.Symbol
	start, decl, end int
	methods          int
	fields           int
	nested           int
	isInterface      bool
}

type parser struct {
	pf      *parsedFile
	classes []*classInfo
}

// parseFile builds the snapshot of one source file. The parser is line
// oriented: declarations are expected to fit on one line, which is all the
// cleanup passes need and keeps the adapter trivially auditable.
func parseFile(path string, data []byte) *parsedFile {
	lines := strings.Split(string(data), "\n")
	pf := &parsedFile{
		path:  path,
		lines: lines,
		code:  stripNoise(lines),
	}

	p := &parser{pf: pf}
	p.parseRange(0, len(lines)-1, nil, false)

	for _, ci := range p.classes {
		sym := ci.sym
		sym.MethodCount = ci.methods
		sym.FieldCount = ci.fields
		sym.NestedClassCount = ci.nested
		pf.classes = append(pf.classes, span{sym: sym, start: ci.start, decl: ci.decl, end: ci.end})
	}

	return pf
}

func (p *parser) parseRange(start, end int, containing *classInfo, isInterface bool) {
	pendStart := -1
	var pendAnnotations []string
	pendDeprecatedTag := false

	reset := func() {
		pendStart = -1
		pendAnnotations = nil
		pendDeprecatedTag = false
	}

	for i := start; i <= end && i < len(p.pf.lines); i++ {
		raw := strings.TrimSpace(p.pf.lines[i])
		code := strings.TrimSpace(p.pf.code[i])

		if code == "" {
			if strings.HasPrefix(raw, "/**") {
				if pendStart == -1 {
					pendStart = i
				}
				j := i
				var doc strings.Builder
				for ; j <= end && j < len(p.pf.lines); j++ {
					doc.WriteString(p.pf.lines[j])
					doc.WriteString("\n")
					if strings.Contains(p.pf.lines[j], "*/") {
						break
					}
				}
				if strings.Contains(strings.ToLower(doc.String()), "@deprecated") {
					pendDeprecatedTag = true
				}
				i = j
				continue
			}
			// Blank lines and plain comments keep the pending attachment
			continue
		}

		if strings.HasPrefix(code, "@") {
			if m := annotationRe.FindStringSubmatch(code); m != nil {
				if pendStart == -1 {
					pendStart = i
				}
				pendAnnotations = append(pendAnnotations, m[1])
				continue
			}
		}

		if containing == nil {
			if m := packageRe.FindStringSubmatch(code); m != nil {
				p.pf.pkg = m[1]
				reset()
				continue
			}
			if m := importRe.FindStringSubmatch(code); m != nil {
				qname := m[1]
				p.pf.imports = append(p.pf.imports, span{
					sym: model.Symbol{
						Kind:          model.KindImport,
						Name:          model.SimpleName(qname),
						QualifiedName: qname,
						File:          p.pf.path,
						Wildcard:      strings.HasSuffix(qname, ".*"),
					},
					start: i,
					decl:  i,
					end:   i,
				})
				reset()
				continue
			}
		}

		if m := typeRe.FindStringSubmatch(code); m != nil {
			name := m[3]
			bodyEnd := findMatchingBrace(p.pf.code, i)
			qualified := name
			if containing != nil {
				qualified = containing.sym.QualifiedName + "." + name
				containing.nested++
			} else if p.pf.pkg != "" {
				qualified = p.pf.pkg + "." + name
			}

			declStart := i
			if pendStart != -1 {
				declStart = pendStart
			}
			ci := &classInfo{
				sym: model.Symbol{
					Kind:                model.KindClass,
					Name:                name,
					QualifiedName:       qualified,
					File:                p.pf.path,
					Modifiers:           parseModifiers(m[1]),
					Annotations:         pendAnnotations,
					HasDeprecatedDocTag: pendDeprecatedTag,
				},
				start:       declStart,
				decl:        i,
				end:         bodyEnd,
				isInterface: m[2] == "interface",
			}
			if containing != nil {
				ci.sym.ContainingClass = containing.sym.QualifiedName
			}
			p.classes = append(p.classes, ci)
			reset()
			p.parseRange(i+1, bodyEnd-1, ci, ci.isInterface)
			i = bodyEnd
			continue
		}

		if containing != nil {
			if m := methodRe.FindStringSubmatch(code); m != nil {
				name := m[3]
				if name == containing.sym.Name {
					// constructor: never a removal candidate, skip its body
					if m[5] == "{" {
						i = findMatchingBrace(p.pf.code, i)
					}
					reset()
					continue
				}

				bodyEnd := i
				if m[5] == "{" {
					bodyEnd = findMatchingBrace(p.pf.code, i)
				}
				declStart := i
				if pendStart != -1 {
					declStart = pendStart
				}
				sym := model.Symbol{
					Kind:                model.KindMethod,
					Name:                name,
					QualifiedName:       containing.sym.QualifiedName + "#" + name,
					File:                p.pf.path,
					ContainingClass:     containing.sym.QualifiedName,
					Modifiers:           parseModifiers(m[1]),
					Annotations:         pendAnnotations,
					HasDeprecatedDocTag: pendDeprecatedTag,
					InterfaceMember:     isInterface,
				}
				sym.Overrides = sym.HasAnnotation("Override")
				p.pf.methods = append(p.pf.methods, span{sym: sym, start: declStart, decl: i, end: bodyEnd})
				containing.methods++
				reset()
				i = bodyEnd
				continue
			}

			if m := fieldRe.FindStringSubmatch(code); m != nil && isFieldDecl(code) {
				name := m[3]
				declStart := i
				if pendStart != -1 {
					declStart = pendStart
				}
				sym := model.Symbol{
					Kind:                model.KindField,
					Name:                name,
					QualifiedName:       containing.sym.QualifiedName + "#" + name,
					File:                p.pf.path,
					ContainingClass:     containing.sym.QualifiedName,
					Modifiers:           parseModifiers(m[1]),
					Annotations:         pendAnnotations,
					HasDeprecatedDocTag: pendDeprecatedTag,
				}
				p.pf.fields = append(p.pf.fields, span{sym: sym, start: declStart, decl: i, end: i})
				containing.fields++
				reset()
				continue
			}
		}

		reset()
	}
}

// isFieldDecl rejects call-shaped lines the field pattern would otherwise
// accept. Parentheses are fine in the initializer, not in the declarator.
func isFieldDecl(code string) bool {
	head := code
	if i := strings.Index(code, "="); i >= 0 {
		head = code[:i]
	}
	return !strings.Contains(head, "(")
}

func parseModifiers(list string) model.Modifiers {
	var mods model.Modifiers
	for _, word := range strings.Fields(list) {
		switch word {
		case "public":
			mods.Public = true
		case "private":
			mods.Private = true
		case "static":
			mods.Static = true
		case "final":
			mods.Final = true
		}
	}
	return mods
}

// findMatchingBrace returns the line on which the brace opened at or after
// start closes again.
func findMatchingBrace(code []string, start int) int {
	depth := 0
	opened := false
	for j := start; j < len(code); j++ {
		for _, ch := range code[j] {
			switch ch {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
				if opened && depth == 0 {
					return j
				}
			}
		}
	}
	return len(code) - 1
}

// stripNoise blanks comments and string/char literal contents so brace
// counting and identifier scanning never trip over them. Line structure is
// preserved.
func stripNoise(lines []string) []string {
	out := make([]string, len(lines))
	inBlock := false

	for i, line := range lines {
		var b strings.Builder
		j := 0
		for j < len(line) {
			if inBlock {
				idx := strings.Index(line[j:], "*/")
				if idx < 0 {
					break
				}
				j += idx + 2
				inBlock = false
				continue
			}

			c := line[j]
			if c == '/' && j+1 < len(line) && line[j+1] == '/' {
				break
			}
			if c == '/' && j+1 < len(line) && line[j+1] == '*' {
				inBlock = true
				j += 2
				continue
			}
			if c == '"' || c == '\'' {
				quote := c
				b.WriteByte(quote)
				j++
				for j < len(line) {
					if line[j] == '\\' {
						j += 2
						continue
					}
					if line[j] == quote {
						j++
						break
					}
					j++
				}
				b.WriteByte(quote)
				continue
			}
			b.WriteByte(c)
			j++
		}
		out[i] = b.String()
	}
	return out
}
