// Package cmdline interprets command line arguments of the form
//
//	program [action] [-opt[=value] ...] [operand ...]
//
// against a registry of actions and options. Delimiter, separator and case
// rules come from a platform.Profile, so the same registry also accepts the
// Windows form "program [action] [/opt[:value] ...] [operand ...]".
package cmdline

import (
	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/registry"
	"github.com/mwantia/cmdline/usage"
)

// AnyOperands disables the operand count check for an action.
const AnyOperands = registry.AnyOperands

var (
	WithOperands = registry.WithOperands
	WithCaster   = registry.WithCaster
)

// CommandLine owns a registry and parses argument vectors against it.
// Register everything before the first call to Parse; after that the
// CommandLine is read-only and Parse may be called from several goroutines.
type CommandLine struct {
	opts     *Options
	registry *registry.Registry
}

func New(opts ...CommandLineOption) (*CommandLine, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	var regOpts []registry.Option
	if options.Strict {
		regOpts = append(regOpts, registry.Strict())
	}

	return &CommandLine{
		opts:     options,
		registry: registry.New(options.Profile, regOpts...),
	}, nil
}

// AddAction registers an action. By default it accepts any number of
// operands; use WithOperands to require an exact count.
func (c *CommandLine) AddAction(name, help string, opts ...registry.ActionOpt) error {
	if err := c.registry.AddAction(name, help, opts...); err != nil {
		return newProgrammingError(err, "cmdline: cannot register action")
	}
	return nil
}

// AddOption registers an option. Without WithCaster its value is cast by the
// builtin caster of whatever type the option is queried as.
func (c *CommandLine) AddOption(name, help string, opts ...registry.OptionOpt) error {
	if err := c.registry.AddOption(name, help, opts...); err != nil {
		return newProgrammingError(err, "cmdline: cannot register option")
	}
	return nil
}

func (c *CommandLine) Profile() platform.Profile {
	return c.opts.Profile
}

func (c *CommandLine) Program() string {
	return c.opts.Program
}

func (c *CommandLine) Registry() *registry.Registry {
	return c.registry
}

// Usage renders the help text.
func (c *CommandLine) Usage() string {
	r := &usage.Renderer{
		Program: c.opts.Program,
		Texts: usage.Texts{
			Overview: c.opts.Overview,
			Example:  c.opts.Example,
			Footer:   c.opts.Footer,
		},
		Color: c.opts.Color,
	}
	return r.Render(c.registry)
}
