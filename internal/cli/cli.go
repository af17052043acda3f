// Package cli implements the waypath command-line interface.
//
// # Commands
//
//   - route:   shortest route between two waypoints
//   - matrix:  print the adjacency matrix
//   - convert: re-encode a graph as table, yaml or dot
//   - render:  draw the graph (and optionally a route) to SVG
//
// Global flags select a TOML config file (--config), override its input
// settings (--input, --format, --delimiter) and enable debug logging
// (--verbose). The logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/config"
	"github.com/katalvlaran/waypath/graphio"
	"github.com/katalvlaran/waypath/table"
	"github.com/katalvlaran/waypath/waypoint"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the waypath CLI, printing any error to stderr.
func Execute() error {
	root := newRootCmd(os.Stdin)
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, "%v", err)
		return err
	}
	return nil
}

// app holds state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool

	input     string
	format    string
	delimiter string

	cfg   *config.Config
	stdin io.Reader
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin}

	root := &cobra.Command{
		Use:           "waypath",
		Short:         "waypath finds shortest routes across waypoint graphs",
		Long:          `waypath loads a graph of weighted waypoint links and computes shortest routes between waypoints, prints its adjacency matrix, converts it between formats or renders it to SVG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("waypath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&a.input, "input", "i", "", "graph file, - for stdin (overrides config)")
	pf.StringVar(&a.format, "format", "", "input format: table or yaml (overrides config)")
	pf.StringVar(&a.delimiter, "delimiter", "", "table column delimiter (overrides config)")

	root.AddCommand(a.routeCommand())
	root.AddCommand(a.matrixCommand())
	root.AddCommand(a.convertCommand())
	root.AddCommand(a.renderCommand())

	return root
}

// setup resolves configuration and attaches the logger to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = a.delimiter
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

	return nil
}

// loadGraph reads the configured input in the configured format.
func (a *app) loadGraph(ctx context.Context) (*waypoint.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var r io.Reader = a.stdin
	if a.cfg.Input != "-" {
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}
	logger.Debug("loading graph", "input", a.cfg.Input, "format", a.cfg.Format)

	var (
		g   *waypoint.Graph
		err error
	)
	switch a.cfg.Format {
	case config.FormatYAML:
		g, err = graphio.DecodeYAML(r)
	default:
		g, err = table.Parse(r, table.WithDelimiter(a.cfg.Delimiter))
	}
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Loaded %d waypoints, %d links from %s", g.Len(), g.ConnectionCount(), displayName(a.cfg.Input)))
	return g, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// parseFormat normalises an output format name.
func parseFormat(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
