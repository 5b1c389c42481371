// rescale-util - path, filename and list-encoding helpers
package main

import (
	"os"

	"github.com/rescale/rescale-util/internal/cli"
	"github.com/rescale/rescale-util/internal/version"
)

// Version information, set by ldflags during build.
var (
	Version   = "v0.1.0"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
