// Command bigeen runs the Bigeen marketing website.
package main

import (
	"os"

	"github.com/ahbiggie/Bigeen-web/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
