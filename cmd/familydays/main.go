package main

import (
	"errors"
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"github.com/runnerr0/familydays/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		// go-flags has already printed its own parse errors.
		var flagsErr *goflags.Error
		if !errors.As(err, &flagsErr) {
			fmt.Fprintln(os.Stderr, "familydays:", err)
		}
		os.Exit(1)
	}
}
