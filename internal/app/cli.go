package app

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// Name is the program name shown in usage and error output
const Name = "scaffold"

// CLI represents the command line interface configuration
type CLI struct {
	// Version flag
	Version kong.VersionFlag `kong:"short='V',help='Show version information'"`
}

// NewParser builds the kong parser for cli. Extra options are applied after
// the defaults so callers can override writers and the exit hook.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name(Name),
		kong.Description("Command-line scaffold with no commands of its own"),
		kong.Vars{"version": GetVersion()},
	}
	opts = append(opts, options...)

	parser, err := kong.New(cli, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}
	return parser, nil
}
