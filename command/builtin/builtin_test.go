package builtin

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/command"
	"github.com/mwantia/cmdline/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *command.Manager {
	t.Helper()

	cl, err := cmdline.New(
		cmdline.WithProfile(platform.POSIX),
		cmdline.WithProgram("demo"),
		cmdline.WithStdout(io.Discard),
		cmdline.WithExitFunc(func(int) {}),
	)
	require.NoError(t, err)

	m := command.NewManager(cl)
	require.NoError(t, InitBuiltin(m, "1.2.3"))
	return m
}

func run(t *testing.T, m *command.Manager, args ...string) (string, int, error) {
	t.Helper()

	var out bytes.Buffer
	code, err := m.Execute(context.Background(), args, &out)
	return out.String(), code, err
}

func TestInitBuiltin(t *testing.T) {
	m := newManager(t)

	var names []string
	for _, cmd := range m.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"echo", "version"}, names)

	assert.Error(t, InitBuiltin(m, "again"), "builtins cannot be registered twice")
}

func TestVersion(t *testing.T) {
	m := newManager(t)

	out, code, err := run(t, m, "version")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "demo 1.2.3\n", out)

	_, code, err = run(t, m, "version", "extra")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, cmdline.ErrTooManyOperands)
}

func TestEcho(t *testing.T) {
	m := newManager(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"echo", "a", "b"}, "a b\n"},
		{"no operands", []string{"echo"}, "\n"},
		{"upper", []string{"echo", "-upper", "hi"}, "HI\n"},
		{"separator", []string{"echo", "-sep=,", "a", "b", "c"}, "a,b,c\n"},
		{"repeat", []string{"echo", "-repeat=2", "x"}, "x\nx\n"},
		{"repeat zero", []string{"echo", "-repeat=0", "x"}, ""},
		{"combined", []string{"echo", "-upper", "-sep=-", "-repeat=2", "a", "b"}, "A-B\nA-B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code, err := run(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEcho_InvalidOptions(t *testing.T) {
	m := newManager(t)

	_, code, err := run(t, m, "echo", "-repeat=-1", "x")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, cmdline.ErrCastFailed)
	assert.Contains(t, err.Error(), "repeat count cannot be negative")

	_, code, err = run(t, m, "echo", "-repeat=lots")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, cmdline.ErrCastFailed)

	_, code, err = run(t, m, "echo", "-upper=maybe")
	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, cmdline.ErrCastFailed)
}
