package clean

//hellogen:hello
type Order struct{}

//hellogen:hello
type Invoice struct{}

// Greeter greets.
//
//hellogen:hello
func Greeter() {}

//hellogen:hello
const Answer = 42
