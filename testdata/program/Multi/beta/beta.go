package beta

type Beta struct {
	//hellogen:hello
	Mike int
}
