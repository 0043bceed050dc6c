// @MX:ANCHOR: [AUTO] main is the entry point of the springinit CLI; any error exits with status 1.
// @MX:REASON: sole entry point of the binary, delegates to the cobra command tree
package main

import (
	"os"

	"github.com/buildcli/springinit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
