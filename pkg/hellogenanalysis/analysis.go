// Package hellogenanalysis reports //hellogen:hello directives which are not
// attached to a package-level declaration. Such a directive is not an error
// for the generator, which silently skips it, so this analyzer is the only
// place it surfaces in an editor or in golangci-lint.
package hellogenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/hellogen/internal/codefmt"
	"github.com/sublee/hellogen/internal/hellogen/discover"
)

var Analyzer = &analysis.Analyzer{
	Name: "hellogen",
	Doc:  "reports hellogen directives which mark no declaration",
	URL:  "https://pkg.go.dev/github.com/sublee/hellogen",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	p, err := discover.New(&packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	})
	if err != nil {
		return nil, err
	}

	report(pass, p.Validate())
	return nil, nil
}

// report turns each dangling directive joined in err into a diagnostic
// spanning the directive comment.
func report(pass *analysis.Pass, err error) {
	switch err := err.(type) {
	case *codefmt.CodeError:
		pass.Report(analysis.Diagnostic{
			Pos:     err.Pos(),
			End:     err.End(),
			Message: err.Unwrap().Error(),
		})
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			report(pass, err)
		}
	}
}
