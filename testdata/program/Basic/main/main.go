package main

import (
	"fmt"

	"example.com/Basic/generated"
)

//hellogen:hello
type Order struct{}

//hellogen:hello
type Invoice struct{}

type Unmarked struct{}

func main() {
	fmt.Print(generated.GeneratedClass{}.GetMessage())
}
