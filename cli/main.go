package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/command"
	"github.com/mwantia/cmdline/command/builtin"
	"github.com/mwantia/cmdline/log"
)

var version = "dev"

const (
	envLogLevel = "CMDLINE_LOG_LEVEL"
	envLogFile  = "CMDLINE_LOG_FILE"
)

// setupLogger reads the logger configuration from the environment. Tracing is
// off unless a level is set.
func setupLogger() (*log.Logger, error) {
	level := log.Off
	if s := os.Getenv(envLogLevel); s != "" {
		l, err := log.Parse(s)
		if err != nil {
			return nil, err
		}
		level = l
	}

	return log.NewLogger("cmdline", level, os.Getenv(envLogFile), false), nil
}

func run(ctx context.Context, args []string) int {
	logger, err := setupLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	cl, err := cmdline.New(
		cmdline.WithLogger(logger),
		cmdline.WithOverview("Demonstrates the cmdline argument interpreter."),
		cmdline.WithExample("cmdline echo -upper -sep=, hello world"),
		cmdline.WithFooter(fmt.Sprintf("Set %s=debug to trace parsing.", envLogLevel)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup command line: %v\n", err)
		return 1
	}

	if err := cl.AddOption("dump", "Print the parse outcome as YAML instead of running"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register options: %v\n", err)
		return 1
	}

	m := command.NewManager(cl)
	if err := builtin.InitBuiltin(m, version); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup commands: %v\n", err)
		return 1
	}

	res := cl.ParseOrExit(args)
	if res == nil {
		return 0
	}

	dump, _, err := cmdline.Option[bool](res, "dump")
	if err != nil {
		report(err)
		return 1
	}
	if dump {
		out, err := cl.Dump(args)
		if err != nil {
			logger.Error("dump failed: %v", err)
			return 1
		}
		fmt.Print(out)
		return 0
	}

	code, err := m.Dispatch(ctx, res, os.Stdout)
	if err != nil {
		report(err)
	}
	return code
}

func report(err error) {
	var perr *cmdline.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, perr.Report())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
