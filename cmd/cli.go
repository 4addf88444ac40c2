package cmd

import (
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI. It exits the process when a command fails.
func Run(args []string) {
	if err := Execute(args); err != nil {
		log.Fatalf("%v", err)
	}
}

// Execute parses args and runs the selected sub-command.
func Execute(args []string) error {
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	opts.Init(firstCommand(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// firstCommand returns the first argument that is neither an option nor the
// value of -f/--config.
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-f", a == "--config":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before the full flags parsing so that the service can be built by whichever
// sub-command runs.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}
