package cmdline

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type dumpDocument struct {
	Profile   string       `yaml:"profile"`
	Program   string       `yaml:"program"`
	Actions   []dumpAction `yaml:"actions,omitempty"`
	Options   []dumpOption `yaml:"options,omitempty"`
	Arguments []string     `yaml:"arguments"`
	Help      bool         `yaml:"help,omitempty"`
	Result    *dumpResult  `yaml:"result,omitempty"`
	Error     *dumpError   `yaml:"error,omitempty"`
}

type dumpAction struct {
	Name     string `yaml:"name"`
	Help     string `yaml:"help,omitempty"`
	Operands int    `yaml:"operands"`
}

type dumpOption struct {
	Name   string `yaml:"name"`
	Help   string `yaml:"help,omitempty"`
	Custom bool   `yaml:"custom_caster,omitempty"`
}

type dumpResult struct {
	Action   string            `yaml:"action,omitempty"`
	Options  map[string]string `yaml:"options,omitempty"`
	Operands []string          `yaml:"operands,omitempty"`
}

type dumpError struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	Hint    string `yaml:"hint,omitempty"`
}

func newDumpError(err error) (*dumpError, error) {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return nil, err
	}
	return &dumpError{
		Kind:    perr.Kind.String(),
		Message: perr.Message,
		Hint:    perr.Hint,
	}, nil
}

// Dump describes the registry and the outcome of parsing args as YAML. It
// never prints usage or exits, even when args request help.
func (c *CommandLine) Dump(args []string) (string, error) {
	doc := dumpDocument{
		Profile:   c.opts.Profile.Name,
		Program:   c.opts.Program,
		Arguments: append([]string{}, args...),
	}

	for _, a := range c.registry.Actions() {
		doc.Actions = append(doc.Actions, dumpAction{
			Name:     a.Name,
			Help:     a.Help,
			Operands: a.Operands,
		})
	}
	for _, o := range c.registry.Options() {
		doc.Options = append(doc.Options, dumpOption{
			Name:   o.Name,
			Help:   o.Help,
			Custom: o.Caster != nil,
		})
	}

	p := c.newParser(args)
	if p.wantsHelp() {
		doc.Help = true
	} else if res, err := p.run(); err != nil {
		derr, err := newDumpError(err)
		if err != nil {
			return "", err
		}
		doc.Error = derr
	} else {
		doc.Result = &dumpResult{
			Action:   res.action,
			Options:  make(map[string]string, len(res.options)),
			Operands: res.Operands(),
		}
		for name, s := range res.options {
			doc.Result.Options[name] = s.raw
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("cmdline: failed to encode dump: %w", err)
	}
	return string(out), nil
}
