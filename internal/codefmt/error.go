package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error at a span of user source, such as a hellogen directive
// which marks nothing. The analyzer reports it as a diagnostic over [Pos, End),
// and its message starts with "file:line:col: " for the command line.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

func (e CodeError) Unwrap() error  { return e.err }
func (e CodeError) Pos() token.Pos { return e.pos }
func (e CodeError) End() token.Pos { return e.end }

func (e CodeError) Error() string {
	switch {
	case e.err == nil:
		return ""
	case e.fset == nil || !e.pos.IsValid():
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf creates a [CodeError] at the span of node. End is taken only when node
// implements [Ender]; a nil node leaves the error unpositioned.
//
// The message is plain text. An error argument panics.
func (f Formatter) Errorf(node Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: CodeError cannot wrap an error")
		}
	}

	e := &CodeError{err: fmt.Errorf(format, args...), fset: f.Fset}
	if node != nil {
		e.pos = node.Pos()
		if ender, ok := node.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}
