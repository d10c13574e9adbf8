package command_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/command"
	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name     string
	operands int
	options  []registry.OptionSpec
	code     int

	got *cmdline.Result
}

func (f *fakeCommand) Name() string                   { return f.name }
func (f *fakeCommand) Description() string            { return "fake " + f.name }
func (f *fakeCommand) Operands() int                  { return f.operands }
func (f *fakeCommand) Options() []registry.OptionSpec { return f.options }

func (f *fakeCommand) Execute(ctx context.Context, res *cmdline.Result, w io.Writer) (int, error) {
	f.got = res
	fmt.Fprintf(w, "%s:%d", f.name, res.NumOperands())
	return f.code, nil
}

func newManager(t *testing.T, profile platform.Profile, stdout io.Writer) *command.Manager {
	t.Helper()

	cl, err := cmdline.New(
		cmdline.WithProfile(profile),
		cmdline.WithProgram("tool"),
		cmdline.WithStdout(stdout),
		cmdline.WithColor(false),
		cmdline.WithExitFunc(func(int) {}),
	)
	require.NoError(t, err)
	return command.NewManager(cl)
}

func TestManager_Register(t *testing.T) {
	m := newManager(t, platform.POSIX, io.Discard)

	require.NoError(t, m.Register(&fakeCommand{name: "build", operands: 1}))
	assert.Error(t, m.Register(nil))
	assert.Error(t, m.Register(&fakeCommand{name: ""}))

	err := m.Register(&fakeCommand{name: "build"})
	assert.EqualError(t, err, "command already registered: build")

	spec, ok := m.CommandLine().Registry().Action("build")
	require.True(t, ok)
	assert.Equal(t, "fake build", spec.Help)
	assert.Equal(t, 1, spec.Operands)

	_, err = m.Get("missing")
	assert.EqualError(t, err, "command not found: missing")
}

func TestManager_RegisterRejectedLeavesNoAction(t *testing.T) {
	cl, err := cmdline.New(
		cmdline.WithProfile(platform.POSIX),
		cmdline.WithProgram("tool"),
		cmdline.WithStdout(io.Discard),
		cmdline.WithExitFunc(func(int) {}),
		cmdline.WithStrictRegistration(),
	)
	require.NoError(t, err)
	m := command.NewManager(cl)

	deploy := &fakeCommand{
		name:     "deploy",
		operands: cmdline.AnyOperands,
		options: []registry.OptionSpec{
			{Name: "force"},
			{Name: "env=prod"},
		},
	}
	err = m.Register(deploy)
	assert.ErrorIs(t, err, registry.ErrInvalidName)

	_, ok := cl.Registry().Action("deploy")
	assert.False(t, ok)
	_, ok = cl.Registry().Option("force")
	assert.False(t, ok)
	assert.Empty(t, m.List())

	_, err = m.Execute(context.Background(), []string{"deploy"}, io.Discard)
	assert.EqualError(t, err, "no command specified")

	// fixing the option makes the same command registrable
	deploy.options = []registry.OptionSpec{{Name: "force"}, {Name: "force"}, {Name: "env"}}
	require.NoError(t, m.Register(deploy))

	code, err := m.Execute(context.Background(), []string{"deploy", "-force", "-env=prod"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.True(t, deploy.got.Has("env"))
}

func TestManager_SharedOptions(t *testing.T) {
	m := newManager(t, platform.POSIX, io.Discard)

	verbose := registry.OptionSpec{Name: "verbose", Help: "first"}
	require.NoError(t, m.Register(&fakeCommand{name: "a", operands: cmdline.AnyOperands, options: []registry.OptionSpec{verbose}}))

	verbose.Help = "second"
	require.NoError(t, m.Register(&fakeCommand{name: "b", operands: cmdline.AnyOperands, options: []registry.OptionSpec{verbose}}))

	spec, ok := m.CommandLine().Registry().Option("verbose")
	require.True(t, ok)
	assert.Equal(t, "first", spec.Help)
	assert.Len(t, m.CommandLine().Registry().Options(), 1)
}

func TestManager_List(t *testing.T) {
	m := newManager(t, platform.POSIX, io.Discard)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, m.Register(&fakeCommand{name: name, operands: cmdline.AnyOperands}))
	}

	var names []string
	for _, cmd := range m.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestManager_Execute(t *testing.T) {
	m := newManager(t, platform.Windows, io.Discard)

	build := &fakeCommand{name: "build", operands: 2, code: 3}
	require.NoError(t, m.Register(build))

	var out bytes.Buffer
	code, err := m.Execute(context.Background(), []string{"BUILD", "a", "b"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "build:2", out.String())
	require.NotNil(t, build.got)
	assert.Equal(t, "BUILD", build.got.Action())

	code, err = m.Execute(context.Background(), []string{"build", "a"}, &out)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, cmdline.ErrNotEnoughOperands)
}

func TestManager_ExecuteHelp(t *testing.T) {
	var stdout bytes.Buffer
	m := newManager(t, platform.POSIX, &stdout)
	require.NoError(t, m.Register(&fakeCommand{name: "build", operands: cmdline.AnyOperands}))

	code, err := m.Execute(context.Background(), []string{"-help"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "build")
}

func TestManager_DispatchWithoutAction(t *testing.T) {
	m := newManager(t, platform.POSIX, io.Discard)

	res, err := m.CommandLine().Parse([]string{"loose"})
	require.NoError(t, err)

	code, err := m.Dispatch(context.Background(), res, io.Discard)
	assert.Equal(t, 1, code)
	assert.EqualError(t, err, "no command specified")
}

func TestManager_DispatchCancelled(t *testing.T) {
	m := newManager(t, platform.POSIX, io.Discard)
	cmd := &fakeCommand{name: "run", operands: cmdline.AnyOperands}
	require.NoError(t, m.Register(cmd))

	res, err := m.CommandLine().Parse([]string{"run"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := m.Dispatch(ctx, res, io.Discard)
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, cmd.got)
}
