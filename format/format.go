// Package format substitutes positional "{n}" placeholders in message templates.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPlaceholder = errors.New("format: placeholder index error")

// Format replaces every "{i}" in template with the i-th argument. Each
// argument must be referenced at least once and every placeholder must
// refer to an existing argument.
func Format(template string, args ...any) (string, error) {
	var sb strings.Builder
	used := make([]bool, len(args))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '{' {
			sb.WriteByte(c)
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			sb.WriteString(template[i:])
			break
		}

		index, err := strconv.Atoi(template[i+1 : i+end])
		if err != nil {
			// not a placeholder, keep the brace literally
			sb.WriteByte(c)
			continue
		}
		if index < 0 || index >= len(args) {
			return "", fmt.Errorf("%w: {%d} with %d argument(s)", ErrPlaceholder, index, len(args))
		}

		sb.WriteString(fmt.Sprint(args[index]))
		used[index] = true
		i += end
	}

	for index, ok := range used {
		if !ok {
			return "", fmt.Errorf("%w: argument %d unused", ErrPlaceholder, index)
		}
	}

	return sb.String(), nil
}

// Must is like Format but panics on template errors. Templates are
// compile-time constants, so a failure here is a programming error.
func Must(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}
