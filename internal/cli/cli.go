package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"github.com/runnerr0/familydays/internal/config"
)

// buildParser constructs the go-flags parser for the converter options.
func buildParser() (*goflags.Parser, *Options) {
	var opts Options

	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "familydays"
	parser.ShortDescription = "Convert FamilyTreeBuilder CSV output into a PDF"
	parser.LongDescription = "Converts a MyHeritage Family Tree Builder CSV report into a PDF list of birthdays and anniversaries grouped by month."

	return parser, &opts
}

// Run is the main entry point for the familydays CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and runs the conversion.
func RunWithArgs(version string, args []string) error {
	// --version is not a parser option since both flags are required.
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("familydays %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, opts := buildParser()

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return opts.convert(cfg, logger)
}
