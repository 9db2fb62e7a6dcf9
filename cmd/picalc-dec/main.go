package main

import (
	"bytes"
	"fmt"
	"os"

	"picalc/internal/decapp"
)

func main() {
	var out, errBuf bytes.Buffer
	code := decapp.Run(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
