package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/registry"
)

type VersionCommand struct {
	Program string
	Version string
}

func (v *VersionCommand) Name() string {
	return "version"
}

func (v *VersionCommand) Description() string {
	return "Print the program version"
}

func (v *VersionCommand) Operands() int {
	return 0
}

func (v *VersionCommand) Options() []registry.OptionSpec {
	return nil
}

func (v *VersionCommand) Execute(ctx context.Context, res *cmdline.Result, w io.Writer) (int, error) {
	if _, err := fmt.Fprintf(w, "%s %s\n", v.Program, v.Version); err != nil {
		return 1, err
	}
	return 0, nil
}
