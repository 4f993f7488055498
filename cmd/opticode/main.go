// Command opticode decodes transceiver optical compliance codes that were
// already read from a device (for example from
// /state/port[port-id=...]/transceiver/optical-compliance) into module type,
// host electrical interface, media interface and lane counts.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/HerbHall/opticode/internal/config"
	"github.com/HerbHall/opticode/internal/output"
	"github.com/HerbHall/opticode/internal/version"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `opticode decodes transceiver optical compliance codes.

Usage:
  opticode decode [flags] [CODE...]      decode codes given as arguments or one per stdin line
  opticode inventory [flags] FILE        decode every port of a YAML inventory
  opticode tables [flags]                print the reference tables
  opticode version                       print version information

Common flags:
  --config PATH        configuration file (default: ./opticode.yaml, ./configs, /etc/opticode)
  --format FORMAT      output format: json or yaml
  --log-level LEVEL    debug, info, warn or error
  --log-format FORMAT  console or json

Run "opticode <command> --help" for command flags.
`

// app carries the process streams so commands can be tested in-process.
type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	newLogger func(config.LoggingSettings) (*zap.Logger, error)
}

func main() {
	a := &app{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newLogger: config.NewLogger,
	}
	os.Exit(a.run(os.Args[1:]))
}

func (a *app) run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "decode":
		return a.runDecode(args[1:])
	case "inventory":
		return a.runInventory(args[1:])
	case "tables":
		return a.runTables(args[1:])
	case "version", "--version":
		fmt.Fprintln(a.stdout, version.Info())
		return exitOK
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(a.stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

// commandEnv is what every command needs after flag parsing.
type commandEnv struct {
	settings *config.Settings
	logger   *zap.Logger
	format   output.Format
}

// newFlagSet registers the flags shared by every command.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to configuration file")
	fs.String("format", "json", "output format: json or yaml")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
	return fs
}

// parse parses args into fs and builds the command environment. It returns
// a non-negative exit code when the command should stop immediately.
func (a *app) parse(fs *pflag.FlagSet, args []string) (*commandEnv, int) {
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, exitOK
		}
		return nil, exitUsage
	}

	configPath, _ := fs.GetString("config")
	v, err := config.Load(configPath, fs)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to load configuration: %v\n", err)
		return nil, exitFailure
	}
	settings, err := config.Decode(v)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid configuration: %v\n", err)
		return nil, exitFailure
	}

	logger, err := a.newLogger(settings.Logging)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to initialize logger: %v\n", err)
		return nil, exitFailure
	}

	format, err := output.ParseFormat(settings.Output.Format)
	if err != nil {
		logger.Error("invalid output format", zap.Error(err))
		return nil, exitUsage
	}

	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	}

	return &commandEnv{settings: settings, logger: logger, format: format}, -1
}
