package hellogeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/hellogen/internal/hellogen/discover"
	"github.com/sublee/hellogen/internal/hellogen/filer"
)

var Version string

// Discover returns the marked declarations visible in a pass.
type Discover func() (Request, error)

// Pass runs one generation pass: it discovers marked declarations, generates
// the artifact and writes it to the filer. An error is returned only if the
// discovery fails. Writing never fails a pass.
func Pass(query Discover, f filer.Filer) (*Artifact, bool, error) {
	req, err := query()
	if err != nil {
		return nil, false, err
	}
	a, written := Run(req, f)
	return a, written, nil
}

// Result is the outcome of [Main].
type Result struct {
	Artifact *Artifact

	// Written reports whether the artifact reached the filer. It is false if
	// the filer already had the artifact.
	Written bool

	// Decls are the marked declarations in the order they were generated.
	Decls []discover.Decl

	// Dangling are the directives which marked nothing.
	Dangling []discover.Dangling
}

// Main is the main entry point for hellogen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. wd is the path of the working
// directory. env is the environment variables to use when running the tool.
// tags is the build tags to use when loading packages. tests indicates whether
// to include test files. sorted sorts the declarations by name instead of
// keeping the order they were found. patterns are the package patterns to
// process. The artifact is written to f.
//
// It returns a non-nil error only if the packages cannot be loaded. Type errors
// do not count: the generated package may not exist before the first pass.
func Main(ctx context.Context, wd string, env []string, tags string, tests, sorted bool, patterns []string, f filer.Filer) (*Result, error) {
	if abs, err := filepath.Abs(wd); err == nil {
		wd = abs
	}

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	var res Result
	a, written, err := Pass(func() (Request, error) {
		found, err := discover.Collect(pkgs)
		if err != nil {
			return nil, err
		}

		res.Decls = found.Decls
		res.Dangling = found.Dangling
		if sorted {
			discover.SortByName(res.Decls)
		}

		req := make(Request, len(res.Decls))
		for i, d := range res.Decls {
			req[i] = d
		}
		return req, nil
	}, f)
	if err != nil {
		return nil, err
	}

	res.Artifact = a
	res.Written = written
	return &res, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedFiles | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=hellogen"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				// Discovery reads syntax, and types are optional.
				continue
			}
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}

	return pkgs, nil
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			list = append(list, u.Unwrap()...)
			list[i] = nil
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
