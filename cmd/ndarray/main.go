// Package main provides the ndarray CLI for inspecting and re-encoding array files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const version = "v0.1.0"

var log = logrus.New()

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// run parses global flags, configures logging and dispatches the subcommand.
func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("ndarray", flag.ContinueOnError)
	global.SetOutput(stderr)
	verbose := global.Bool("v", false, "enable debug logging")
	logFile := global.String("log-file", "", "write logs to a rotating file instead of stderr")
	global.Usage = func() { printUsage(stderr) }
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := loadConfig(os.Getenv, *verbose, *logFile)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	closeLog := configureLogging(cfg, stderr)
	defer closeLog()

	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "inspect":
		return runInspect(cmdArgs, stdout, stderr)
	case "convert":
		return runConvert(cmdArgs, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "ndarray %s\n", version)
		return nil
	case "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "ndarray - inspect and re-encode array files")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Usage: ndarray [-v] [-log-file path] <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inspect [-preview] [-verify] <file>                  Show the header of an array file")
	fmt.Fprintln(w, "  convert [-order little|big|native] [-checksum] <in> <out>  Rewrite byte order and checksum")
	fmt.Fprintln(w, "  version                                              Show version")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Environment:\n  %s  log level (panic, fatal, error, warn, info, debug, trace)\n", envLogLevel)
}
