package main

import (
	"fmt"
	"os"

	"github.com/pmkol/slist/coremain"
)

func main() {
	if err := coremain.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
