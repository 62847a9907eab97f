package app

import (
	"io"

	"github.com/alecthomas/kong"
)

// Exit statuses
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 2
)

// exitRequest carries the status kong asked for out of Parse.
type exitRequest struct{ code int }

// run is swapped out in tests
var run = Run

// Main parses args and runs the application, writing to stdout and stderr.
// Usage errors are reported on stderr and turned into ExitUsage. A non-nil
// error means the program itself failed and comes with ExitFailure.
func Main(args []string, stdout, stderr io.Writer) (code int, err error) {
	// kong calls the exit hook for --help and --version. Unwind out of Parse
	// so no later flag gets to print as well.
	exit := func(code int) { panic(exitRequest{code}) }

	var cli CLI
	parser, err := NewParser(&cli, kong.Writers(stdout, stderr), kong.Exit(exit))
	if err != nil {
		return ExitFailure, err
	}

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code, err = req.code, nil
		}
	}()

	if _, parseErr := parser.Parse(args); parseErr != nil {
		parser.Errorf("%s", parseErr)
		return ExitUsage, nil
	}

	if err := run(&cli); err != nil {
		return ExitFailure, err
	}
	return ExitOK, nil
}

// Run executes the main application logic. There is nothing to do beyond
// argument parsing.
func Run(_ *CLI) error {
	return nil
}
