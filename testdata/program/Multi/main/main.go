package main

import (
	"fmt"

	"example.com/Multi/generated"
)

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
