package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/registry"
)

// Command represents an action a CommandLine dispatches to.
type Command interface {
	// Name returns the action name
	Name() string

	// Description returns human-readable help text
	Description() string

	// Operands returns the exact operand count, or cmdline.AnyOperands
	Operands() int

	// Options returns the options this command reads (this is optional)
	Options() []registry.OptionSpec

	// Execute runs the command with the parsed result
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, res *cmdline.Result, w io.Writer) (int, error)
}

// Manager handles command registration and dispatch on top of a CommandLine.
type Manager struct {
	mu   sync.RWMutex
	cl   *cmdline.CommandLine
	cmds map[string]Command
}

func NewManager(cl *cmdline.CommandLine) *Manager {
	return &Manager{
		cl:   cl,
		cmds: make(map[string]Command),
	}
}

func (m *Manager) CommandLine() *cmdline.CommandLine {
	return m.cl
}

// Register adds cmd as an action of the underlying CommandLine. Options
// shared between commands are registered once, by the first command that
// names them.
func (m *Manager) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.cl.Profile().Normalize(name)
	if _, exists := m.cmds[key]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	if err := m.check(cmd); err != nil {
		return err
	}

	if err := m.cl.AddAction(name, cmd.Description(), cmdline.WithOperands(cmd.Operands())); err != nil {
		return err
	}
	for _, opt := range m.newOptions(cmd) {
		if err := m.cl.AddOption(opt.Name, opt.Help, cmdline.WithCaster(opt.Caster)); err != nil {
			return err
		}
	}

	m.cmds[key] = cmd
	return nil
}

// check validates the action and options of cmd before anything is
// registered, so a rejected command leaves the CommandLine untouched.
func (m *Manager) check(cmd Command) error {
	reg := m.cl.Registry()
	if err := reg.CheckAction(cmd.Name(), cmdline.WithOperands(cmd.Operands())); err != nil {
		return fmt.Errorf("cannot register command '%s': %w", cmd.Name(), err)
	}
	for _, opt := range m.newOptions(cmd) {
		if err := reg.CheckOption(opt.Name); err != nil {
			return fmt.Errorf("cannot register command '%s': %w", cmd.Name(), err)
		}
	}
	return nil
}

// newOptions returns the options of cmd not yet known to the registry,
// each name once.
func (m *Manager) newOptions(cmd Command) []registry.OptionSpec {
	reg := m.cl.Registry()
	seen := make(map[string]bool)

	var opts []registry.OptionSpec
	for _, opt := range cmd.Options() {
		key := m.cl.Profile().Normalize(opt.Name)
		if _, exists := reg.Option(key); exists || seen[key] {
			continue
		}
		seen[key] = true
		opts = append(opts, opt)
	}
	return opts
}

// Get returns a command by name
func (m *Manager) Get(name string) (Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.get(name)
}

func (m *Manager) get(name string) (Command, error) {
	cmd, exists := m.cmds[m.cl.Profile().Normalize(name)]
	if !exists {
		return nil, fmt.Errorf("command not found: %s", name)
	}
	return cmd, nil
}

// List returns all registered commands sorted by name
func (m *Manager) List() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.cmds))
	for key := range m.cmds {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	commands := make([]Command, 0, len(keys))
	for _, key := range keys {
		commands = append(commands, m.cmds[key])
	}
	return commands
}

// Execute parses args and runs the selected command. A help request is
// reported as success.
func (m *Manager) Execute(ctx context.Context, args []string, w io.Writer) (int, error) {
	res, err := m.cl.Parse(args)
	if errors.Is(err, cmdline.ErrHelpInvoked) {
		return 0, nil
	}
	if err != nil {
		return 1, err
	}

	return m.Dispatch(ctx, res, w)
}

// Dispatch runs the command selected by an already parsed result.
func (m *Manager) Dispatch(ctx context.Context, res *cmdline.Result, w io.Writer) (int, error) {
	if res.Action() == "" {
		return 1, fmt.Errorf("no command specified")
	}

	m.mu.RLock()
	cmd, err := m.get(res.Action())
	m.mu.RUnlock()
	if err != nil {
		return 1, err
	}

	if err := ctx.Err(); err != nil {
		return 1, err
	}
	return cmd.Execute(ctx, res, w)
}
