package dangling

//hellogen:hello // want `hellogen directive must be attached to a package-level declaration`

type Floating struct{}

//hellogen:hello
type Order struct{}

func f() {
	//hellogen:hello // want `hellogen directive must be attached to a package-level declaration`
	var x int
	_ = x
}

type Trailing int //hellogen:hello // want `hellogen directive must be attached`

var g = func() int {
	//hellogen:hello // want `hellogen directive must be attached`
	return 1
}
