package main

import (
	"fmt"

	"example.com/Empty/generated"
)

// Order is not marked.
type Order struct{}

func main() {
	fmt.Printf("%q\n", generated.GeneratedClass{}.GetMessage())
}
