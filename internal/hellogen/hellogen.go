package hellogeninternal

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/sublee/hellogen/internal/hellogen/filer"
)

// The generated type lives at a fixed address regardless of the request.
const (
	PkgName  = "generated"
	TypeName = "GeneratedClass"
	FuncName = "GetMessage"

	// QualifiedName addresses the artifact in a [filer.Filer].
	QualifiedName = PkgName + "." + TypeName
)

// Marked is a declaration selected by the hellogen directive. Only its simple
// name is used for generation.
type Marked interface {
	Name() string
}

// Request is the set of marked declarations visible in one pass. The order is
// preserved in the generated message.
type Request []Marked

// Artifact is the generated source of one pass.
type Artifact struct {
	// Name is the qualified name of the generated type.
	Name string

	// Code is the Go source code of the generated file.
	Code []byte
}

// Generate generates the artifact for the request. It has no side effects.
//
// The message contains one "<name> says hello!\n" line per declaration in the
// request order. Names are not escaped, so a name containing a quote or a
// backslash yields code that does not compile.
func Generate(req Request) *Artifact {
	var body strings.Builder
	for _, m := range req {
		body.WriteString(m.Name())
		body.WriteString(` says hello!\n`)
	}
	return &Artifact{Name: QualifiedName, Code: frameCode(body.String())}
}

func frameCode(body string) []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/hellogen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", PkgName)
	fmt.Fprintf(&buf, "type %s struct{}\n\n", TypeName)
	fmt.Fprintf(&buf, "func (%s) %s() string {\n", TypeName, FuncName)
	fmt.Fprintf(&buf, "\treturn \"%s\"\n", body)
	fmt.Fprintf(&buf, "}\n")
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}

// Write hands the artifact to the filer. A pass never fails on writing: if
// the filer refuses the artifact, the error is dropped and the artifact
// written by an earlier pass at the same address is left as it is. The result
// only tells whether the artifact reached the store.
func Write(f filer.Filer, a *Artifact) (written bool) {
	w, err := f.Create(a.Name)
	if err != nil {
		return false
	}

	_, err = w.Write(a.Code)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err == nil
}

// Run generates the artifact for the request and writes it to the filer.
func Run(req Request, f filer.Filer) (*Artifact, bool) {
	a := Generate(req)
	return a, Write(f, a)
}

