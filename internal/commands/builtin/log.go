package builtin

import "devconsole/pkg/contypes"

// LogCommand prints a message to the console, optionally repeated.
// Mostly useful for exercising the output path and for script markers.
type LogCommand struct{}

// Spec declares "log <msg> [count]".
func (c *LogCommand) Spec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "log",
		Description: "Print a message to the console",
		Args: []contypes.ArgSpec{
			{Name: "msg", Type: contypes.ArgTypeString, Required: true},
			{Name: "count", Type: contypes.ArgTypeInt, Default: "1", HasDefault: true},
		},
	}
}

// Execute replies with the message count times.
func (c *LogCommand) Execute(inv *contypes.Invocation) error {
	for i := int64(0); i < inv.Int("count"); i++ {
		inv.Reply(inv.String("msg"))
	}
	return nil
}
