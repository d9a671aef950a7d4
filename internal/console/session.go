// Package console assembles the command engine into a single session:
// registry, autocomplete index, dispatcher, scrollback, and history,
// plus the open/closed visibility lifecycle. A process owns exactly one
// Session, constructed at startup and passed to whatever integration
// points need it; the engine keeps no package-level mutable state.
//
// The session is single-threaded by contract: the host runtime must
// drive Dispatch, Suggest, history navigation, and registry mutation
// from one execution context (typically its per-frame update step).
package console

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devconsole/internal/autocomplete"
	"devconsole/internal/commands"
	"devconsole/internal/commands/builtin"
	"devconsole/internal/config"
	"devconsole/internal/dispatch"
	"devconsole/internal/history"
	"devconsole/internal/logger"
	"devconsole/internal/parser"
	"devconsole/internal/scrollback"
	"devconsole/internal/styledtext"
	"devconsole/pkg/contypes"
)

// Session is the process-wide console state. Visibility toggling does
// not destroy any of its contents; only process exit does.
type Session struct {
	id         string
	cfg        *config.Config
	registry   *commands.Registry
	index      *autocomplete.Index
	buffer     *scrollback.Buffer
	history    *history.Navigator
	dispatcher *dispatch.Dispatcher

	open   bool
	onQuit func()
}

// indexObserver keeps the autocomplete index in lockstep with the
// registry: it runs synchronously inside Register/Unregister, so no
// query can observe the two out of sync.
type indexObserver struct {
	index *autocomplete.Index
}

func (o indexObserver) CommandRegistered(name string) {
	o.index.Insert(name)
}

func (o indexObserver) CommandUnregistered(name string) {
	o.index.Remove(name)
}

// NewSession constructs a session from cfg (nil selects defaults),
// registers the built-in commands, and seeds any configured
// argument-completion phrases into the autocomplete index.
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		registry: commands.NewRegistry(),
		index:    autocomplete.NewIndex(cfg.MaxSuggestions),
		buffer:   scrollback.NewBuffer(cfg.ScrollbackLimit),
		history:  history.NewNavigator(cfg.HistorySize),
	}
	s.registry.SetObserver(indexObserver{index: s.index})
	s.dispatcher = dispatch.NewDispatcher(s.registry, s.buffer, s.history, s, cfg.PromptSymbol)

	for _, phrase := range cfg.ArgCompletions {
		s.index.Insert(strings.Join(phrase, " "))
	}

	builtin.RegisterAll(s.registry)

	logger.Debug("console session created", "session", s.id, "commands", s.registry.Len())
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Registry exposes the command registration boundary. Host code adds
// and removes its commands here at any point in the session's lifetime;
// autocomplete reflects every change immediately.
func (s *Session) Registry() *commands.Registry {
	return s.registry
}

// Dispatch submits one raw input line to the engine.
func (s *Session) Dispatch(raw string) dispatch.Result {
	return s.dispatcher.Dispatch(raw)
}

// Suggest returns completion candidates for the in-progress input,
// lexicographically ordered and bounded by the configured suggestion
// count. Empty input yields no suggestions; the suggestion popup only
// appears once the user starts typing.
func (s *Session) Suggest(input string) []string {
	input = styledtext.Strip(input)
	if strings.TrimSpace(input) == "" {
		return nil
	}

	// Normalize whitespace the way the tokenizer sees it, so
	// "spawn   enemy" still matches the "spawn enemy" completion phrase.
	// Unterminated quotes fall back to the raw prefix.
	query := input
	if tokens, err := parser.Tokenize(input); err == nil {
		texts := make([]string, len(tokens))
		for i, tok := range tokens {
			texts[i] = tok.Text
		}
		query = strings.Join(texts, " ")
	}

	return s.index.Query(query)
}

// HistoryPrevious navigates one history entry older (Up key).
func (s *Session) HistoryPrevious() (string, bool) {
	return s.history.Previous()
}

// HistoryNext navigates one history entry newer (Down key); past the
// newest entry it reports the empty new-line state.
func (s *Session) HistoryNext() (string, bool) {
	return s.history.Next()
}

// Lines returns the scrollback contents, oldest first, for rendering.
// The renderer must treat the returned lines as read-only.
func (s *Session) Lines() []contypes.ScrollLine {
	return s.buffer.Lines()
}

// LinesAppended returns the total number of lines ever appended to the
// scrollback. It is monotonic across evictions and clears; renderers
// diff it between frames to find how many of Lines are new.
func (s *Session) LinesAppended() int {
	return s.buffer.Appended()
}

// Print appends one asynchronous output line (engine log forwarding,
// background task results) to the scrollback. The text may carry ANSI
// styling, which is decoded into style runs.
func (s *Session) Print(raw string) {
	s.buffer.AppendText(raw)
}

// Printf appends one formatted output line to the scrollback.
func (s *Session) Printf(format string, args ...any) {
	s.Print(fmt.Sprintf(format, args...))
}

// Open makes the console visible.
func (s *Session) Open() {
	s.open = true
}

// Close hides the console. Scrollback, history, and registrations all
// survive.
func (s *Session) Close() {
	s.open = false
}

// Toggle flips visibility and reports the new state.
func (s *Session) Toggle() bool {
	s.open = !s.open
	return s.open
}

// IsOpen reports whether the console is visible.
func (s *Session) IsOpen() bool {
	return s.open
}

// SetQuitHandler installs the host callback invoked when a command
// requests console shutdown (the quit built-in).
func (s *Session) SetQuitHandler(fn func()) {
	s.onQuit = fn
}

// CommandSpecs implements contypes.Host.
func (s *Session) CommandSpecs() []contypes.CommandSpec {
	return s.registry.Specs()
}

// ClearScrollback implements contypes.Host.
func (s *Session) ClearScrollback() {
	s.buffer.Clear()
}

// HistoryEntries implements contypes.Host.
func (s *Session) HistoryEntries() []string {
	return s.history.Entries()
}

// RequestQuit implements contypes.Host: the console closes and the
// host's quit handler, if any, runs.
func (s *Session) RequestQuit() {
	s.Close()
	if s.onQuit != nil {
		s.onQuit()
	}
}
