package main

import (
	"fmt"

	"example.com/Tagged/generated"
)

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
