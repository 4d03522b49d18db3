package main

import (
	"fmt"
	"os"

	"github.com/nevermoreT/io-capture/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
