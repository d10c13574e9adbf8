package builtin

import "github.com/mwantia/cmdline/command"

// InitBuiltin registers the builtin commands with m.
func InitBuiltin(m *command.Manager, version string) error {
	cmds := []command.Command{
		&VersionCommand{
			Program: m.CommandLine().Program(),
			Version: version,
		},
		&EchoCommand{},
	}

	for _, cmd := range cmds {
		if err := m.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
