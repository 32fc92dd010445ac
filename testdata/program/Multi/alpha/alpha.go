package alpha

//hellogen:hello
type Zulu struct{}

//hellogen:hello
func Alpha() {}
