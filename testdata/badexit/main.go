// Package main provides a test agent that reports success but exits non-zero.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stdout, `{"success":true,"result":123}`)
	os.Exit(1)
}
