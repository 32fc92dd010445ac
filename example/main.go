// Command hellogenexample serves the greeting generated from its marked
// declarations.
package main

//go:generate go tool hellogen -s .

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/hellogenexample/generated"
)

//hellogen:hello
type Order struct {
	ID    int64
	Total int64
}

//hellogen:hello
type Invoice struct {
	OrderID int64
}

// Customer is not marked, so it does not say hello.
type Customer struct {
	Name string
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET("/hello", hello)
	return e
}

func hello(c echo.Context) error {
	return c.String(http.StatusOK, generated.GeneratedClass{}.GetMessage())
}

func main() {
	e := newServer()
	e.Logger.Fatal(e.Start(":8080"))
}
