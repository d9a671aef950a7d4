package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

type stubCommand struct {
	spec contypes.CommandSpec
}

func (s *stubCommand) Spec() contypes.CommandSpec {
	return s.spec
}

func (s *stubCommand) Execute(_ *contypes.Invocation) error {
	return nil
}

func named(name string) *stubCommand {
	return &stubCommand{spec: contypes.CommandSpec{Name: name}}
}

// recordingObserver captures registry notifications in order.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) CommandRegistered(name string) {
	o.events = append(o.events, "add:"+name)
}

func (o *recordingObserver) CommandUnregistered(name string) {
	o.events = append(o.events, "del:"+name)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(named("help")))

	cmd, found := r.Lookup("help")
	require.True(t, found)
	assert.Equal(t, "help", cmd.Spec().Name)

	_, found = r.Lookup("quit")
	assert.False(t, found)
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	r := NewRegistry()
	err := r.Register(named(""))
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_DuplicateNameOverwrites(t *testing.T) {
	r := NewRegistry()
	first := named("reload")
	second := &stubCommand{spec: contypes.CommandSpec{Name: "reload", Description: "v2"}}

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	cmd, found := r.Lookup("reload")
	require.True(t, found)
	assert.Equal(t, "v2", cmd.Spec().Description)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_UnregisterUnknownIsNoOp(t *testing.T) {
	r := NewRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)

	r.Unregister("ghost")

	assert.Empty(t, obs.events)
}

func TestRegistry_NamesLexicographic(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"quit", "clear", "help"} {
		require.NoError(t, r.Register(named(name)))
	}

	assert.Equal(t, []string{"clear", "help", "quit"}, r.Names())
}

func TestRegistry_SpecsOrderedByName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(named("zeta")))
	require.NoError(t, r.Register(named("alpha")))

	specs := r.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, "alpha", specs[0].Name)
	assert.Equal(t, "zeta", specs[1].Name)
}

func TestRegistry_ObserverSeesMutationsInOrder(t *testing.T) {
	r := NewRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)

	require.NoError(t, r.Register(named("help")))
	require.NoError(t, r.Register(named("quit")))
	r.Unregister("help")
	require.NoError(t, r.Register(named("quit"))) // overwrite still notifies

	assert.Equal(t, []string{"add:help", "add:quit", "del:help", "add:quit"}, obs.events)
}
