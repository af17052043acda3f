// Command waypath computes shortest routes across waypoint graphs.
package main

import (
	"os"

	"github.com/katalvlaran/waypath/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
