// Package builtin provides the console's built-in commands: help,
// clear, quit, log, and history. They only touch the session through
// the contypes.Host interface, so they double as reference
// implementations for host-defined commands.
package builtin

import (
	"devconsole/internal/commands"
	"devconsole/pkg/contypes"
)

// All returns fresh instances of the built-in commands.
func All() []contypes.Command {
	return []contypes.Command{
		&HelpCommand{},
		&ClearCommand{},
		&QuitCommand{},
		&LogCommand{},
		&HistoryCommand{},
	}
}

// RegisterAll registers every built-in command with reg. Sessions call
// it during construction; hosts may Unregister built-ins they replace.
func RegisterAll(reg *commands.Registry) {
	for _, cmd := range All() {
		// Built-in specs carry non-empty names, so registration cannot
		// fail.
		_ = reg.Register(cmd)
	}
}
