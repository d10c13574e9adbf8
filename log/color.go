package log

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color returns a fresh colour for lines of the given level.
func Color(l LogLevel) *color.Color {
	switch l {
	case Debug:
		return color.New(color.FgBlue)
	case Info:
		return color.New(color.FgGreen)
	case Warn:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	case Fatal:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Reset)
	}
}

// IsTerminal reports whether f is attached to a terminal and colours should
// be used. NO_COLOR always disables colours.
func IsTerminal(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
