package main

import (
	"io"
	"os"
)

func main() {
	f, err := os.Open("config.txt")
	if err != nil {
		return
	}
	consume(f)
}

// consume never closes its argument; only strict mode notices.
func consume(r io.Reader) {
	_, _ = io.ReadAll(r)
}
