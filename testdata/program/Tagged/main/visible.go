package main

//hellogen:hello
type Visible struct{}
