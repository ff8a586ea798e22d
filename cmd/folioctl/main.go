// Command folioctl inspects the content of a folio site from the command
// line: it lists and shows posts and projects and checks files for problems.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
