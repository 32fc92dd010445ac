package main

import (
	"fmt"

	"example.com/Dangling/generated"
)

//hellogen:hello
type Order struct{}

func main() {
	//hellogen:hello
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
