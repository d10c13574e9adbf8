package cmdline

import (
	"fmt"
	"io"
	"os"

	"github.com/mwantia/cmdline/log"
	"github.com/mwantia/cmdline/platform"
)

// Options configures a CommandLine.
type Options struct {
	Profile platform.Profile
	Program string // name shown in messages, defaults to the executable name

	Overview string // rendered below the syntax line of the usage text
	Example  string
	Footer   string

	Logger *log.Logger // nil disables tracing
	Stdout io.Writer   // receives the usage text
	Stderr io.Writer   // receives reports from ParseOrExit
	Exit   func(int)

	Strict bool // reject duplicate and malformed names at registration
	Color  bool // colourise usage headings
}

type CommandLineOption func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Profile: platform.Default(),
		Program: platform.ExecName(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Exit:    os.Exit,
		Color:   log.IsTerminal(os.Stdout),
	}
}

func WithProfile(p platform.Profile) CommandLineOption {
	return func(o *Options) error {
		if p.Delimiter == "" {
			return fmt.Errorf("cmdline: profile '%s' has no delimiter", p.Name)
		}
		o.Profile = p
		return nil
	}
}

// WithProfileName selects a builtin profile ("posix" or "windows").
func WithProfileName(name string) CommandLineOption {
	return func(o *Options) error {
		p, ok := platform.Lookup(name)
		if !ok {
			return fmt.Errorf("cmdline: unknown profile '%s'", name)
		}
		o.Profile = p
		return nil
	}
}

func WithProgram(name string) CommandLineOption {
	return func(o *Options) error {
		o.Program = name
		return nil
	}
}

func WithOverview(text string) CommandLineOption {
	return func(o *Options) error {
		o.Overview = text
		return nil
	}
}

func WithExample(text string) CommandLineOption {
	return func(o *Options) error {
		o.Example = text
		return nil
	}
}

func WithFooter(text string) CommandLineOption {
	return func(o *Options) error {
		o.Footer = text
		return nil
	}
}

func WithLogger(l *log.Logger) CommandLineOption {
	return func(o *Options) error {
		o.Logger = l
		return nil
	}
}

func WithStdout(w io.Writer) CommandLineOption {
	return func(o *Options) error {
		o.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) CommandLineOption {
	return func(o *Options) error {
		o.Stderr = w
		return nil
	}
}

// WithExitFunc replaces os.Exit, mostly for tests.
func WithExitFunc(exit func(int)) CommandLineOption {
	return func(o *Options) error {
		if exit == nil {
			return fmt.Errorf("cmdline: exit func cannot be nil")
		}
		o.Exit = exit
		return nil
	}
}

func WithStrictRegistration() CommandLineOption {
	return func(o *Options) error {
		o.Strict = true
		return nil
	}
}

func WithColor(enabled bool) CommandLineOption {
	return func(o *Options) error {
		o.Color = enabled
		return nil
	}
}
