// timelang is a command-line front end for the timelang expression parser.
package main

import (
	"fmt"
	"os"

	"github.com/timelang/timelang/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
