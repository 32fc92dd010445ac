package main

import (
	"fmt"

	"example.com/Tests/generated"
)

//hellogen:hello
type Order struct{}

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
