package cmdline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDumpError(t *testing.T) {
	perr := &ParseError{
		Kind:    UnknownOption,
		Program: "tool",
		Message: "unknown option '-x'",
		Hint:    "Try 'tool -help' for more information.",
	}

	derr, err := newDumpError(fmt.Errorf("parse: %w", perr))
	require.NoError(t, err)
	assert.Equal(t, &dumpError{
		Kind:    "UnknownOption",
		Message: "unknown option '-x'",
		Hint:    "Try 'tool -help' for more information.",
	}, derr)

	other := errors.New("boom")
	derr, err = newDumpError(other)
	assert.Nil(t, derr)
	assert.Same(t, other, err)
}
