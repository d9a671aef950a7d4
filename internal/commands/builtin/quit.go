package builtin

import "devconsole/pkg/contypes"

// QuitCommand asks the host to close the console.
type QuitCommand struct{}

// Spec declares "quit".
func (c *QuitCommand) Spec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "quit",
		Description: "Close the console",
	}
}

// Execute requests shutdown through the host. What that means — hiding
// the overlay, exiting a demo shell — is the host's decision.
func (c *QuitCommand) Execute(inv *contypes.Invocation) error {
	inv.Host.RequestQuit()
	return nil
}
