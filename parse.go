package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mwantia/cmdline/format"
	"github.com/mwantia/cmdline/log"
	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/registry"
)

const (
	msgNoAction       = "no action"
	msgUnknownAction  = "unknown action '{0}'"
	msgUnknownOption  = "unknown option '{0}'"
	msgTooMany        = "too many operands"
	msgNotEnough      = "not enough operands"
	msgInvalidOperand = "invalid operand '{0}'"

	hintDefault        = "Try '{0} {1}' for more information."
	hintActionFirst    = "Action should appear before options."
	hintOperandCount   = "The action '{0}' needs {1} operand(s)."
	hintOptionsFirst   = "Options should appear before operands, is it an option?"
	hintDidYouMean     = "Did you mean '{0}'?"
	defaultOptionValue = "true"
)

// Parse interprets args, which must not include the program name. The first
// argument may request the usage text, in which case it is written to the
// configured stdout and the exit function is called with status 0.
//
// Any other failure is returned as a *ParseError; no partial result is
// returned alongside it.
func (c *CommandLine) Parse(args []string) (*Result, error) {
	p := c.newParser(args)

	if p.wantsHelp() {
		p.trace("help", map[string]any{"token": args[0]})
		fmt.Fprintln(c.opts.Stdout, c.Usage())
		c.opts.Exit(0)
		return nil, ErrHelpInvoked
	}

	return p.run()
}

// ParseOrExit is like Parse but prints the report of a parse failure to the
// configured stderr and exits with status 1.
func (c *CommandLine) ParseOrExit(args []string) *Result {
	res, err := c.Parse(args)
	if err == nil {
		return res
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(c.opts.Stderr, perr.Report())
		c.opts.Exit(1)
		return nil
	}

	if !errors.Is(err, ErrHelpInvoked) {
		fmt.Fprintln(c.opts.Stderr, err)
		c.opts.Exit(1)
	}
	return nil
}

type parser struct {
	cl      *CommandLine
	profile platform.Profile
	reg     *registry.Registry
	logger  *log.Logger
	traceID string

	tokens   []string
	operands int
	result   *Result
}

func (c *CommandLine) newParser(args []string) *parser {
	p := &parser{
		cl:       c,
		profile:  c.opts.Profile,
		reg:      c.registry,
		tokens:   append([]string(nil), args...),
		operands: AnyOperands,
		result: &Result{
			options: make(map[string]supplied),
			profile: c.opts.Profile,
			program: c.opts.Program,
		},
	}

	if c.opts.Logger.Enabled(log.Debug) {
		p.logger = c.opts.Logger.Named("parse")
		p.traceID = uuid.NewString()
	}
	return p
}

func (p *parser) wantsHelp() bool {
	return len(p.tokens) > 0 && p.profile.IsHelp(p.tokens[0])
}

func (p *parser) run() (*Result, error) {
	p.trace("start", map[string]any{"tokens": len(p.tokens)})

	steps := []func() error{
		p.parseAction,
		p.parseOptions,
		p.parseOperands,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			p.trace("failed", map[string]any{"error": err.Error()})
			return nil, err
		}
	}

	p.trace("done", map[string]any{
		"action":   p.result.action,
		"options":  len(p.result.options),
		"operands": len(p.result.operands),
	})
	return p.result, nil
}

func (p *parser) parseAction() error {
	if !p.reg.HasActions() {
		return nil
	}

	if len(p.tokens) == 0 {
		return p.fail(NoAction, "", format.Must(msgNoAction), "")
	}

	token := p.tokens[0]
	if p.profile.HasDelimiter(token) && p.reg.HasOptions() {
		return p.fail(ActionMustPrecedeOptions, token, format.Must(msgNoAction), hintActionFirst)
	}

	spec, ok := p.reg.Action(token)
	if !ok {
		err := p.fail(UnknownAction, token, format.Must(msgUnknownAction, token), "")
		if name, ok := p.reg.SuggestAction(token); ok {
			suggestion := p.profile.Denormalize(name)
			err.Suggestion = suggestion
			err.Hint = format.Must(hintDidYouMean, suggestion)
		}
		return err
	}

	p.result.action = token
	p.operands = spec.Operands
	p.tokens = p.tokens[1:]

	p.trace("action", map[string]any{"token": token, "operands": spec.Operands})
	return nil
}

func (p *parser) parseOptions() error {
	if !p.reg.HasOptions() {
		return nil
	}

	for len(p.tokens) > 0 && p.profile.HasDelimiter(p.tokens[0]) {
		token := p.tokens[0]
		key, val := p.splitOption(strings.TrimPrefix(token, p.profile.Delimiter))

		spec, ok := p.reg.Option(key)
		if !ok {
			err := p.fail(UnknownOption, token, format.Must(msgUnknownOption, p.profile.Delimited(key)), "")
			if name, ok := p.reg.SuggestOption(key); ok {
				suggestion := p.profile.Denormalize(p.profile.Delimited(name))
				err.Suggestion = suggestion
				err.Hint = format.Must(hintDidYouMean, suggestion)
			}
			return err
		}

		// later occurrences replace earlier ones
		p.result.options[spec.Name] = supplied{raw: val, caster: spec.Caster}
		p.tokens = p.tokens[1:]

		p.trace("option", map[string]any{"key": spec.Name, "length": len(val)})
	}
	return nil
}

func (p *parser) splitOption(arg string) (key, val string) {
	if i := strings.IndexByte(arg, p.profile.Separator); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, defaultOptionValue
}

func (p *parser) parseOperands() error {
	if p.operands >= 0 && len(p.tokens) != p.operands {
		kind, msg := TooManyOperands, msgTooMany
		if len(p.tokens) < p.operands {
			kind, msg = NotEnoughOperands, msgNotEnough
		}
		hint := format.Must(hintOperandCount, p.profile.Denormalize(p.result.action), p.operands)
		return p.fail(kind, "", format.Must(msg), hint)
	}

	for _, token := range p.tokens {
		if p.profile.HasDelimiter(token) {
			return p.fail(InvalidOperand, token, format.Must(msgInvalidOperand, token), hintOptionsFirst)
		}
	}

	p.result.operands = p.tokens
	p.trace("operands", map[string]any{"count": len(p.tokens)})
	return nil
}

func (p *parser) fail(kind ErrorKind, token, message, hint string) *ParseError {
	if hint == "" {
		hint = p.cl.defaultHint()
	}
	return &ParseError{
		Kind:    kind,
		Program: p.cl.opts.Program,
		Message: message,
		Hint:    hint,
		Token:   token,
	}
}

func (p *parser) trace(state string, fields map[string]any) {
	if p.logger == nil {
		return
	}
	fields["trace"] = p.traceID
	p.logger.Debugw(state, fields)
}

func (c *CommandLine) defaultHint() string {
	return format.Must(hintDefault, c.opts.Program, c.opts.Profile.HelpToken())
}
