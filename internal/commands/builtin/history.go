package builtin

import "devconsole/pkg/contypes"

// HistoryCommand lists previously submitted lines, oldest first.
type HistoryCommand struct{}

// Spec declares "history".
func (c *HistoryCommand) Spec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "history",
		Description: "List submitted command lines",
	}
}

// Execute replies with one numbered line per history entry.
func (c *HistoryCommand) Execute(inv *contypes.Invocation) error {
	entries := inv.Host.HistoryEntries()
	if len(entries) == 0 {
		inv.Reply("history is empty")
		return nil
	}
	for i, entry := range entries {
		inv.Replyf("%3d  %s", i+1, entry)
	}
	return nil
}
