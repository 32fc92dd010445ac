package main

import (
	"fmt"

	"example.com/TypeError/generated"
)

//hellogen:hello
type Order struct{}

var total int = "zero"

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage(), total)
}
