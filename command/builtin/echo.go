package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/cmdline"
	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/registry"
	"github.com/mwantia/cmdline/value"
)

// EchoCommand writes its operands to the output, joined by a separator.
type EchoCommand struct{}

func (e *EchoCommand) Name() string {
	return "echo"
}

func (e *EchoCommand) Description() string {
	return "Print the operands"
}

func (e *EchoCommand) Operands() int {
	return cmdline.AnyOperands
}

func (e *EchoCommand) Options() []registry.OptionSpec {
	return []registry.OptionSpec{
		{Name: "upper", Help: "Convert the output to upper case"},
		{Name: "sep", Help: "Separator placed between operands"},
		{Name: "repeat", Help: "Print the line this many times", Caster: castRepeat},
	}
}

func (e *EchoCommand) Execute(ctx context.Context, res *cmdline.Result, w io.Writer) (int, error) {
	upper, _, err := cmdline.Option[bool](res, "upper")
	if err != nil {
		return 1, err
	}

	sep, ok, err := cmdline.Option[string](res, "sep")
	if err != nil {
		return 1, err
	}
	if !ok {
		sep = " "
	}

	repeat, ok, err := cmdline.Option[int32](res, "repeat")
	if err != nil {
		return 1, err
	}
	if !ok {
		repeat = 1
	}

	line := strings.Join(res.Operands(), sep)
	if upper {
		line = strings.ToUpper(line)
	}

	for i := int32(0); i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return 1, err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return 1, err
		}
	}
	return 0, nil
}

func castRepeat(raw string) (value.Value, error) {
	n, err := value.As[int32](raw, platform.POSIX)
	if err != nil {
		return value.Value{}, err
	}
	if n < 0 {
		return value.Value{}, fmt.Errorf("repeat count cannot be negative: '%s'", raw)
	}
	return value.OfInt32(n), nil
}
