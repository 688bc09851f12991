package main

import (
	"fmt"
	"io"
	"os"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

func main() {
	if err := Execute(); err != nil {
		fatal("Error", err)
	}
}

// fatal reports err on stderr and terminates with a non-zero status.
func fatal(msg string, err error) {
	fmt.Fprintf(stderr, "%s: %v\n", msg, err)
	exit(1)
}
