package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Profile bundles the conventions that differ between POSIX and Windows style
// command lines: how names are compared, how options are introduced and how
// an option key is separated from its value.
type Profile struct {
	// Name identifies the profile ("posix" or "windows")
	Name string

	// Delimiter prefixes every option token (e.g. "-" or "/")
	Delimiter string

	// Separator splits an option token into key and value
	Separator byte

	// FoldCase enables case-insensitive comparison of names
	FoldCase bool

	// HelpAlias is an additional literal that triggers help (e.g. "/?")
	HelpAlias string
}

var (
	POSIX = Profile{
		Name:      "posix",
		Delimiter: "-",
		Separator: '=',
	}

	Windows = Profile{
		Name:      "windows",
		Delimiter: "/",
		Separator: ':',
		FoldCase:  true,
		HelpAlias: "/?",
	}
)

// Default returns the profile matching the operating system this binary runs on.
func Default() Profile {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// Lookup resolves a profile by its name.
func Lookup(name string) (Profile, bool) {
	switch strings.ToLower(name) {
	case POSIX.Name:
		return POSIX, true
	case Windows.Name:
		return Windows, true
	}
	return Profile{}, false
}

// Normalize canonicalizes a name for comparison.
func (p Profile) Normalize(s string) string {
	if p.FoldCase {
		return strings.ToLower(s)
	}
	return s
}

// Denormalize converts a normalized name back into its display form.
func (p Profile) Denormalize(s string) string {
	if p.FoldCase {
		return strings.ToUpper(s)
	}
	return s
}

// Equal reports whether two names are equal after normalization.
func (p Profile) Equal(a, b string) bool {
	return p.Normalize(a) == p.Normalize(b)
}

// Delimited prefixes name with the option delimiter.
func (p Profile) Delimited(name string) string {
	return p.Delimiter + name
}

// HasDelimiter reports whether a token starts with the option delimiter.
func (p Profile) HasDelimiter(token string) bool {
	return strings.HasPrefix(token, p.Delimiter)
}

// HelpToken returns the token shown to users for requesting help.
func (p Profile) HelpToken() string {
	if p.HelpAlias != "" {
		return p.HelpAlias
	}
	return p.Delimited("help")
}

// IsHelp reports whether token requests the usage text.
func (p Profile) IsHelp(token string) bool {
	if p.HelpAlias != "" && token == p.HelpAlias {
		return true
	}
	return p.Equal(token, p.Delimited("help"))
}

// ExecName returns the base name of the running executable without any
// Windows ".exe" suffix.
func ExecName() string {
	name := ""
	if len(os.Args) > 0 {
		name = os.Args[0]
	}
	if name == "" {
		if exe, err := os.Executable(); err == nil {
			name = exe
		}
	}

	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		name = name[:len(name)-len(".exe")]
	}
	return name
}
