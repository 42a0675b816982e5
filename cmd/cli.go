package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// Run is the entry point for the CLI; it exits the process on failure.
func Run(args []string) {
	if err := RunE(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return
		}
		log.Error().Err(err).Msg("unitconv failed")
		os.Exit(1)
	}
}

// RunE parses args and executes the selected sub-command.
func RunE(args []string) error {
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	opts.Init(firstCommand(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// extractConfigPath searches the raw arguments for -f/--config before the
// full parsing so that sub-commands can load the config early.
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

// firstCommand returns the first argument that is neither a global option
// nor its value.
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-f" || a == "--config":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
