package main

import (
	"fmt"

	"example.com/TaggedExtra/generated"
)

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
