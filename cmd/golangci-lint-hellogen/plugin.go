// Package golangcilinthellogen registers the hellogen analyzer as a
// golangci-lint module plugin, so misplaced //hellogen:hello directives are
// reported next to the other linters of a project. Build the custom binary
// from this directory:
//
//	golangci-lint custom
//
// and enable the "hellogen" linter in .golangci.yml.
package golangcilinthellogen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/hellogen/pkg/hellogenanalysis"
)

func init() {
	register.Plugin(hellogenanalysis.Analyzer.Name, New)
}

// New creates the plugin. The linter takes no settings.
func New(any) (register.LinterPlugin, error) {
	return HellogenLinter{}, nil
}

type HellogenLinter struct{}

func (HellogenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{hellogenanalysis.Analyzer}, nil
}

// GetLoadMode asks for type information. Directives are found in syntax
// alone, but declarations are resolved to their objects when types exist.
func (HellogenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
