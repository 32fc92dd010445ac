package main

//hellogen:hello
type Order struct{}

func main() {
	println(
}
