package builtin

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"devconsole/pkg/contypes"
)

var (
	helpNameStyle  = lipgloss.NewStyle().Bold(true)
	helpUsageStyle = lipgloss.NewStyle().Faint(true)
)

// HelpCommand lists registered commands or shows one command's usage.
type HelpCommand struct{}

// Spec declares "help [command]".
func (c *HelpCommand) Spec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "help",
		Description: "List commands, or show usage for one command",
		Args: []contypes.ArgSpec{
			{Name: "command", Type: contypes.ArgTypeString},
		},
	}
}

// Execute replies with the command listing, or with the usage of the
// requested command.
func (c *HelpCommand) Execute(inv *contypes.Invocation) error {
	specs := inv.Host.CommandSpecs()

	if inv.Has("command") {
		name := inv.String("command")
		for _, spec := range specs {
			if spec.Name == name {
				inv.Replyf("%s - %s", helpNameStyle.Render(spec.Name), spec.Description)
				inv.Replyf("usage: %s", helpUsageStyle.Render(spec.Usage()))
				return nil
			}
		}
		return fmt.Errorf("no such command '%s'", name)
	}

	inv.Replyf("%d commands available:", len(specs))
	for _, spec := range specs {
		inv.Replyf("  %s - %s", helpNameStyle.Render(spec.Name), spec.Description)
	}
	return nil
}
