package builtin

import "devconsole/pkg/contypes"

// ClearCommand empties the scrollback buffer.
type ClearCommand struct{}

// Spec declares "clear".
func (c *ClearCommand) Spec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "clear",
		Description: "Clear the console scrollback",
	}
}

// Execute clears the scrollback. The echo of the clear command itself
// is wiped with everything else, leaving an empty console.
func (c *ClearCommand) Execute(inv *contypes.Invocation) error {
	inv.Host.ClearScrollback()
	return nil
}
