// Package hellogen documents the hellogen directive, a marker for generating
// a greeting type from the names of marked declarations.
//
// Mark any package-level declaration with the directive:
//
//	//hellogen:hello
//	type Order struct{}
//
//	//hellogen:hello
//	type Invoice struct{}
//
// Then run the hellogen command. It discovers every marked declaration in the
// loaded packages and writes a single file for the fixed package "generated":
//
//	go run github.com/sublee/hellogen/cmd/hellogen ./...
//
//	// generated:
//	package generated
//
//	type GeneratedClass struct{}
//
//	func (GeneratedClass) GetMessage() string {
//		return "Order says hello!\nInvoice says hello!\n"
//	}
//
// The package name, the type name and the output address never depend on what
// was marked. A pass with no marked declarations still writes the file, and
// GetMessage returns an empty string.
//
// # Placement
//
// The directive is recognized in the doc comment of:
//
//   - a type, var or const declaration, including a whole group
//   - a single spec inside a declaration group
//   - a function or method
//   - a named or embedded field of a struct type
//   - a method of an interface type
//
// Text after the directive on the same line is ignored. A directive anywhere
// else, such as inside a function body or separated from its declaration by
// a blank line, marks nothing. The hellogen command warns about it and the
// [github.com/sublee/hellogen/pkg/hellogenanalysis] analyzer reports it.
//
// # Output
//
// The generated file is written once per pass. If the output store refuses to
// write it, e.g. because it was already created in the same build, the pass
// still succeeds and the previously written file is kept as it is. Names are
// copied into the string literal without escaping.
//
// Files guarded by "//go:build hellogen" are visible to the generator but not
// to regular builds.
package hellogen

// Directive is the marker comment recognized by the generator.
const Directive = "//hellogen:hello"
