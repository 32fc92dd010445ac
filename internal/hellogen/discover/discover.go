// Package discover finds declarations marked by the hellogen directive in
// loaded packages.
package discover

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/hellogen"
	"github.com/sublee/hellogen/internal/codefmt"
)

// Kind is the kind of a marked declaration.
type Kind int

const (
	KindType Kind = iota
	KindFunc
	KindMethod
	KindVar
	KindConst
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindField:
		return "field"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Decl is a declaration marked by the hellogen directive.
type Decl struct {
	name     string
	kind     Kind
	obj      types.Object
	pos      token.Pos
	position token.Position
}

// Name returns the simple name of the declaration.
func (d Decl) Name() string { return d.name }

func (d Decl) Kind() Kind { return d.kind }

// Object returns the object defined by the declaration. It is nil if the
// package has no type information.
func (d Decl) Object() types.Object { return d.obj }

func (d Decl) Pos() token.Pos { return d.pos }

func (d Decl) Position() token.Position { return d.position }

func (d Decl) String() string {
	return fmt.Sprintf("%s %s", d.kind, d.name)
}

// Dangling is a hellogen directive which is not attached to any declaration
// that can be marked.
type Dangling struct {
	pos      token.Pos
	end      token.Pos
	position token.Position

	// Func is the name of the function enclosing the directive, if any.
	Func string
}

func (d Dangling) Pos() token.Pos           { return d.pos }
func (d Dangling) End() token.Pos           { return d.end }
func (d Dangling) Position() token.Position { return d.position }

// IsDirective reports whether the comment is the hellogen directive. Text
// following the directive after a space is allowed.
func IsDirective(c *ast.Comment) bool {
	rest, ok := strings.CutPrefix(c.Text, hellogen.Directive)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// DanglingMessage describes a dangling directive.
const DanglingMessage = "hellogen directive must be attached to a package-level declaration"

// Parser scans the syntax of the underlying package for marked declarations.
type Parser struct {
	pkg      *packages.Package
	decls    []Decl
	dangling []Dangling
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser] and scans the package. The package must have its
// Name, Fset and Syntax. TypesInfo is optional.
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}

	p := &Parser{pkg: pkg}
	for _, file := range pkg.Syntax {
		p.scanFile(file)
	}
	return p, nil
}

// Marked returns the marked declarations in the order of files and
// declarations.
func (p *Parser) Marked() []Decl {
	return slices.Clone(p.decls)
}

// Dangling returns the directives not attached to any declaration.
func (p *Parser) Dangling() []Dangling {
	return slices.Clone(p.dangling)
}

// Validate reports every dangling directive as a [codefmt.CodeError]. The
// errors are joined.
func (p *Parser) Validate() error {
	var errs error
	for _, d := range p.dangling {
		errs = errors.Join(errs, codefmt.Errorf(p.pkg.Fset, d, "%s", DanglingMessage))
	}
	return errs
}

// scanFile collects marked declarations from a file. Directives which were
// not consumed by a declaration are collected as dangling.
func (p *Parser) scanFile(file *ast.File) {
	s := scanner{p: p, attached: make(map[*ast.Comment]bool)}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if s.mark(decl.Doc) {
				kind := KindFunc
				if decl.Recv != nil {
					kind = KindMethod
				}
				s.add(decl.Name, kind)
			}

		case *ast.GenDecl:
			if decl.Tok == token.IMPORT {
				continue
			}

			group := s.mark(decl.Doc)
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					if s.mark(spec.Doc) || group {
						s.add(spec.Name, KindType)
					}
					s.scanMembers(spec.Type)

				case *ast.ValueSpec:
					if s.mark(spec.Doc) || group {
						kind := KindVar
						if decl.Tok == token.CONST {
							kind = KindConst
						}
						for _, name := range spec.Names {
							s.add(name, kind)
						}
					}
				}
			}
		}
	}

	for _, group := range file.Comments {
		for _, c := range group.List {
			if !IsDirective(c) || s.attached[c] {
				continue
			}

			d := Dangling{
				pos:      c.Pos(),
				end:      c.End(),
				position: p.pkg.Fset.Position(c.Pos()),
			}
			path, _ := astutil.PathEnclosingInterval(file, c.Pos(), c.End())
			for _, node := range path {
				if fn, ok := node.(*ast.FuncDecl); ok {
					d.Func = fn.Name.Name
					break
				}
			}
			p.dangling = append(p.dangling, d)
		}
	}
}

type scanner struct {
	p        *Parser
	attached map[*ast.Comment]bool
}

// mark reports whether the doc comment contains the directive. Found
// directives are recorded as attached.
func (s scanner) mark(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	ok := false
	for _, c := range doc.List {
		if IsDirective(c) {
			s.attached[c] = true
			ok = true
		}
	}
	return ok
}

func (s scanner) add(id *ast.Ident, kind Kind) {
	d := Decl{
		name:     id.Name,
		kind:     kind,
		pos:      id.Pos(),
		position: s.p.pkg.Fset.Position(id.Pos()),
	}
	if info := s.p.pkg.TypesInfo; info != nil {
		d.obj = info.Defs[id]
	}
	s.p.decls = append(s.p.decls, d)
}

// scanMembers collects marked fields of a struct type and marked methods of
// an interface type.
func (s scanner) scanMembers(expr ast.Expr) {
	var (
		list *ast.FieldList
		kind Kind
	)
	switch typ := expr.(type) {
	case *ast.StructType:
		list, kind = typ.Fields, KindField
	case *ast.InterfaceType:
		list, kind = typ.Methods, KindMethod
	default:
		return
	}
	if list == nil {
		return
	}

	for _, field := range list.List {
		if len(field.Names) != 0 {
			if s.mark(field.Doc) {
				for _, name := range field.Names {
					s.add(name, kind)
				}
			}
			continue
		}

		// Embedded field or embedded interface
		id, ok := embeddedIdent(field.Type)
		if !ok {
			continue
		}
		if s.mark(field.Doc) {
			if kind == KindMethod {
				s.add(id, KindType)
			} else {
				s.add(id, KindField)
			}
		}
	}
}

// embeddedIdent extracts the identifier naming an embedded type.
//
//	Foo
//	^^^
//	*pkg.Foo
//	     ^^^
//	Foo[int]
//	^^^
func embeddedIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.StarExpr:
		return embeddedIdent(expr.X)
	case *ast.SelectorExpr:
		return expr.Sel, true
	case *ast.IndexExpr:
		return embeddedIdent(expr.X)
	case *ast.IndexListExpr:
		return embeddedIdent(expr.X)
	}
	return nil, false
}

// SortByName sorts declarations by name in Unicode collation order. Equal
// names keep their relative order.
func SortByName(decls []Decl) {
	c := collate.New(language.Und)
	slices.SortStableFunc(decls, func(a, b Decl) int {
		return c.CompareString(a.name, b.name)
	})
}
