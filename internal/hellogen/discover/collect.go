package discover

import (
	"errors"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"
)

// Result is the union of marked declarations and dangling directives over
// several packages.
type Result struct {
	Decls    []Decl
	Dangling []Dangling
}

// Collect scans the packages and merges their results. A package loaded with
// tests is also loaded as its test variant, which repeats the same files. So
// declarations and directives are deduplicated by source position, keeping the
// first-seen order.
func Collect(pkgs []*packages.Package) (*Result, error) {
	decls := linkedhashmap.New()
	dangling := linkedhashmap.New()
	var errs error

	for _, pkg := range pkgs {
		p, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, d := range p.Marked() {
			if _, ok := decls.Get(d.position.String()); !ok {
				decls.Put(d.position.String(), d)
			}
		}
		for _, d := range p.Dangling() {
			if _, ok := dangling.Get(d.position.String()); !ok {
				dangling.Put(d.position.String(), d)
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	res := &Result{
		Decls:    make([]Decl, 0, decls.Size()),
		Dangling: make([]Dangling, 0, dangling.Size()),
	}
	for _, v := range decls.Values() {
		res.Decls = append(res.Decls, v.(Decl))
	}
	for _, v := range dangling.Values() {
		res.Dangling = append(res.Dangling, v.(Dangling))
	}
	return res, nil
}
