//go:build extra

package main

//hellogen:hello
type Extra struct{}
