package registry

import (
	"testing"

	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAction(t *testing.T) {
	r := New(platform.Windows)

	require.NoError(t, r.AddAction("Build", "build things", WithOperands(1)))
	require.NoError(t, r.AddAction("clean", "remove artifacts"))

	spec, ok := r.Action("BUILD")
	require.True(t, ok)
	assert.Equal(t, "build", spec.Name)
	assert.Equal(t, 1, spec.Operands)

	spec, ok = r.Action("clean")
	require.True(t, ok)
	assert.Equal(t, AnyOperands, spec.Operands)

	_, ok = r.Action("deploy")
	assert.False(t, ok)

	assert.Error(t, r.AddAction("bad", "", WithOperands(-2)))
}

func TestRegistry_OverwriteByDefault(t *testing.T) {
	r := New(platform.POSIX)

	require.NoError(t, r.AddAction("run", "first", WithOperands(0)))
	require.NoError(t, r.AddAction("run", "second"))

	spec, ok := r.Action("run")
	require.True(t, ok)
	assert.Equal(t, "second", spec.Help)
	assert.Equal(t, AnyOperands, spec.Operands)
	assert.Len(t, r.Actions(), 1)
}

func TestRegistry_Strict(t *testing.T) {
	r := New(platform.Windows, Strict())

	require.NoError(t, r.AddOption("verbose", ""))
	assert.ErrorIs(t, r.AddOption("VERBOSE", ""), ErrDuplicateName)
	assert.ErrorIs(t, r.AddOption("", ""), ErrInvalidName)
	assert.ErrorIs(t, r.AddOption("/x", ""), ErrInvalidName)
	assert.ErrorIs(t, r.AddOption("a:b", ""), ErrInvalidName)

	require.NoError(t, r.AddAction("run", ""))
	assert.ErrorIs(t, r.AddAction("Run", ""), ErrDuplicateName)
}

func TestRegistry_CheckLeavesNoEntry(t *testing.T) {
	r := New(platform.POSIX, Strict())

	require.NoError(t, r.CheckAction("deploy", WithOperands(1)))
	assert.ErrorIs(t, r.CheckAction(""), ErrInvalidName)
	assert.Error(t, r.CheckAction("deploy", WithOperands(-2)))
	assert.False(t, r.HasActions())

	require.NoError(t, r.CheckOption("env"))
	assert.ErrorIs(t, r.CheckOption("env=prod"), ErrInvalidName)
	assert.False(t, r.HasOptions())

	require.NoError(t, r.AddOption("env", ""))
	assert.ErrorIs(t, r.CheckOption("env"), ErrDuplicateName)
	assert.Len(t, r.Options(), 1)
}

func TestRegistry_OptionCaster(t *testing.T) {
	r := New(platform.POSIX)
	caster := func(raw string) (value.Value, error) { return value.OfInt64(int64(len(raw))), nil }

	require.NoError(t, r.AddOption("size", "", WithCaster(caster)))
	require.NoError(t, r.AddOption("plain", ""))

	spec, ok := r.Option("size")
	require.True(t, ok)
	require.NotNil(t, spec.Caster)

	v, err := spec.Caster("abc")
	require.NoError(t, err)
	assert.Equal(t, value.OfInt64(3), v)

	spec, ok = r.Option("plain")
	require.True(t, ok)
	assert.Nil(t, spec.Caster)
}

func TestRegistry_SortedIteration(t *testing.T) {
	r := New(platform.POSIX)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.AddAction(name, ""))
		require.NoError(t, r.AddOption(name, ""))
	}

	var actions, options []string
	for _, a := range r.Actions() {
		actions = append(actions, a.Name)
	}
	for _, o := range r.Options() {
		options = append(options, o.Name)
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, actions)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, options)
	assert.True(t, r.HasActions())
	assert.True(t, r.HasOptions())
	assert.False(t, New(platform.POSIX).HasActions())
}

func TestRegistry_Suggest(t *testing.T) {
	r := New(platform.POSIX)
	require.NoError(t, r.AddAction("format", ""))
	require.NoError(t, r.AddOption("verbose", ""))
	require.NoError(t, r.AddOption("output", ""))

	// registered name contained in the token
	name, ok := r.SuggestAction("formatting")
	assert.True(t, ok)
	assert.Equal(t, "format", name)

	// token contained in the registered name
	name, ok = r.SuggestOption("verb")
	assert.True(t, ok)
	assert.Equal(t, "verbose", name)

	// no containment, no edit distance
	_, ok = r.SuggestAction("frobnicate")
	assert.False(t, ok)
	_, ok = r.SuggestOption("vrbose")
	assert.False(t, ok)

	// ambiguous
	require.NoError(t, r.AddOption("out", ""))
	name, ok = r.SuggestOption("utpu")
	assert.True(t, ok)
	assert.Equal(t, "output", name)
	_, ok = r.SuggestOption("ou")
	assert.False(t, ok, "out and output both contain ou")

	_, ok = r.SuggestOption("")
	assert.False(t, ok)
}
