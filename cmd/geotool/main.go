package main

import (
	"fmt"
	"log"
	"os"

	"github.com/airbusgeo/godal"

	"github.com/rasterlab/geotool/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr so command output on stdout stays parseable
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("GEOTOOL_LOG_LEVEL") == "debug" {
		log.Printf("geotool v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	godal.RegisterAll()

	cli.Execute(versionString())
}

func versionString() string {
	if Version == "dev" {
		return Version
	}
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}
