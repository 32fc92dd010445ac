package members

type Base struct{}

type Order struct {
	//hellogen:hello
	ID string

	//hellogen:hello
	*Base

	Total int //hellogen:hello // want `hellogen directive must be attached`
}

type Doer interface {
	//hellogen:hello
	Do() error
}
