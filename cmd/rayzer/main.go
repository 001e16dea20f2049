// Command rayzer distributes space across constraints and splits rectangles
// from the command line. All commands live in internal/cli.
package main

import (
	"github.com/grindlemire/go-rayzer/internal/cli"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
