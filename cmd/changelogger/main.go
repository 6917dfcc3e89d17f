package main

import (
	"errors"
	"os"

	"github.com/mkohler/changelogger/internal/cli"
	"github.com/mkohler/changelogger/internal/config"
	"github.com/mkohler/changelogger/internal/log"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		log.Error("%v", err)

		// Broken or missing configuration gets its own exit status so
		// wrappers can tell "fix your setup" apart from a failed run.
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
