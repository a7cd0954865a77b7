package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benjaminschreck/go-docxml/pkg/docxml"
	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
)

const version = "0.1.0"

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxml [-config <file>] [-log-level <level>] <command> [arguments]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  run <file.yaml>    Render the runs described in a YAML file")
	fmt.Fprintln(w, "  html <markup>      Render inline HTML (b, i, u, span, br) as runs")
	fmt.Fprintln(w, "  start <n>          Render a numbering start marker")
	fmt.Fprintln(w, "  version            Show version information")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("docxml", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	logLevel := fs.String("log-level", "", "Override the log level (debug, info, warn, error, off)")
	fs.Usage = func() {
		usage(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := configure(*configPath, *logLevel); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if fs.NArg() < 1 {
		usage(stderr)
		return 1
	}

	out, err := execute(fs.Arg(0), fs.Args()[1:], stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if out != nil {
		fmt.Fprintln(stdout, string(out))
	}
	return 0
}

func configure(path, level string) error {
	config := docxml.GetGlobalConfig()
	if path != "" {
		loaded, err := docxml.LoadConfigFile(path)
		if err != nil {
			return err
		}
		config = loaded
	}
	if level != "" {
		config.LogLevel = level
		if err := config.Validate(); err != nil {
			return err
		}
	}
	docxml.SetGlobalConfig(config)
	return nil
}

func execute(command string, args []string, stdout io.Writer) ([]byte, error) {
	switch command {
	case "version":
		fmt.Fprintf(stdout, "docxml version %s\n", version)
		return nil, nil
	case "run":
		if len(args) != 1 {
			return nil, fmt.Errorf("run expects exactly one file, got %d arguments", len(args))
		}
		return docxml.RenderFile(args[0])
	case "html":
		if len(args) != 1 {
			return nil, fmt.Errorf("html expects exactly one argument, got %d", len(args))
		}
		return docxml.RenderHTML(args[0])
	case "start":
		if len(args) != 1 {
			return nil, fmt.Errorf("start expects exactly one value, got %d arguments", len(args))
		}
		v, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid start value %q: %w", args[0], err)
		}
		return docxml.Render(xml.NewStart(uint(v)))
	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}
}
