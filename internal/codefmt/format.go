package codefmt

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
)

type (
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

// Formatter formats code errors with positions in a file set.
type Formatter struct {
	Fset *token.FileSet
}

func New(fset *token.FileSet) Formatter {
	return Formatter{fset}
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition formats the position in file:line:column form. The file name
// is relative to the working directory if possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

func Errorf(fset *token.FileSet, poser Poser, format string, args ...any) error {
	return New(fset).Errorf(poser, format, args...)
}
