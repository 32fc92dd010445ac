//go:build hellogen

package main

//hellogen:hello
type Hidden struct{}
