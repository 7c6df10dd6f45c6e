// Package main provides a test agent that writes diagnostics to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stdout, "stdout line")
	fmt.Fprintln(os.Stderr, "stderr line")
	fmt.Fprintln(os.Stdout, `{"success":true}`)
}
