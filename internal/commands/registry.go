// Package commands provides command registration and lookup for the
// console engine. The registry is the single source of truth for which
// commands exist; the autocomplete index observes every mutation so the
// two can never be seen out of sync.
package commands

import (
	"fmt"
	"sort"

	"devconsole/internal/logger"
	"devconsole/pkg/contypes"
)

// Observer is notified synchronously inside Register and Unregister,
// before either returns. The autocomplete index implements it; any
// lookup or query issued after a registry mutation therefore observes
// the updated index.
type Observer interface {
	CommandRegistered(name string)
	CommandUnregistered(name string)
}

// Registry maps command names to their implementations. It is owned by a
// single console session and mutated only from the session's
// single-threaded context, so it carries no lock.
type Registry struct {
	commands map[string]contypes.Command
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]contypes.Command)}
}

// SetObserver installs the mutation observer. Passing nil detaches it.
func (r *Registry) SetObserver(obs Observer) {
	r.observer = obs
}

// Register adds a command under its declared name. Registering a name
// that already exists replaces the prior command (hot-reload friendly)
// and logs a warning, matching how repeat registrations are usually a
// live-reimport rather than a mistake. An empty name is an error.
func (r *Registry) Register(cmd contypes.Command) error {
	name := cmd.Spec().Name
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if _, exists := r.commands[name]; exists {
		logger.Warn("console command already registered, overwriting", "command", name)
	}
	r.commands[name] = cmd

	if r.observer != nil {
		r.observer.CommandRegistered(name)
	}
	return nil
}

// Unregister removes a command by name. Unregistering an unknown name is
// a no-op.
func (r *Registry) Unregister(name string) {
	if _, exists := r.commands[name]; !exists {
		return
	}
	delete(r.commands, name)

	if r.observer != nil {
		r.observer.CommandUnregistered(name)
	}
}

// Lookup retrieves a command by name.
func (r *Registry) Lookup(name string) (contypes.Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns all registered command names in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns the specs of all registered commands, ordered by name.
func (r *Registry) Specs() []contypes.CommandSpec {
	names := r.Names()
	specs := make([]contypes.CommandSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, r.commands[name].Spec())
	}
	return specs
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
