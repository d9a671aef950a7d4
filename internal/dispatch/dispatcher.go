// Package dispatch turns a submitted console line into a validated
// command invocation. Every failure class — parse, unknown command,
// argument, handler — is caught here, rendered as a styled scrollback
// line, and never propagates to the host runtime.
package dispatch

import (
	"fmt"
	"strings"

	"devconsole/internal/autocomplete"
	"devconsole/internal/commands"
	"devconsole/internal/history"
	"devconsole/internal/logger"
	"devconsole/internal/parser"
	"devconsole/internal/scrollback"
	"devconsole/internal/styledtext"
	"devconsole/pkg/contypes"
)

// Result reports the outcome of one dispatch. Err carries the error
// class when the line failed; the corresponding styled line has already
// been appended to the scrollback either way.
type Result struct {
	// Command is the resolved command name, empty when the line never
	// resolved (parse failure, unknown command, no-op).
	Command string
	// Err is nil on success or a no-op.
	Err error
}

// Dispatcher resolves lines against the registry and runs them. It owns
// no state of its own beyond references to the session's structures.
type Dispatcher struct {
	registry *commands.Registry
	buffer   *scrollback.Buffer
	history  *history.Navigator
	host     contypes.Host
	prompt   string
}

// NewDispatcher wires a dispatcher to the session's registry, scrollback
// and history. host is handed to every invocation; prompt is the echo
// prefix for submitted lines.
func NewDispatcher(reg *commands.Registry, buf *scrollback.Buffer, hist *history.Navigator, host contypes.Host, prompt string) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		buffer:   buf,
		history:  hist,
		host:     host,
		prompt:   prompt,
	}
}

// Dispatch processes one raw input line end to end: echo, record in
// history, tokenize, resolve, validate, invoke, append output. A
// whitespace-only line is a complete no-op. The raw line is recorded in
// history for every non-empty submission, including failed ones, so the
// user can recall and edit it.
func (d *Dispatcher) Dispatch(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}

	d.buffer.Append(echoLine(d.prompt, raw))
	d.history.Submit(raw)

	tokens, err := parser.Tokenize(raw)
	if err != nil {
		perr := &contypes.ParseError{Line: raw, Err: err}
		d.appendError(perr.Error())
		return Result{Err: perr}
	}
	if len(tokens) == 0 {
		return Result{}
	}

	name := tokens[0].Text
	cmd, found := d.registry.Lookup(name)
	if !found {
		uerr := &contypes.UnknownCommandError{Name: name}
		d.appendError(uerr.Error())
		if near, ok := autocomplete.Nearest(name, d.registry.Names()); ok {
			d.buffer.Append(hintLine(fmt.Sprintf("did you mean '%s'?", near)))
		}
		return Result{Err: uerr}
	}

	spec := cmd.Spec()
	inv, argErr := bindArgs(spec, tokens[1:], d.host)
	if argErr != nil {
		d.appendError(argErr.Error())
		return Result{Command: name, Err: argErr}
	}

	logger.Debug("dispatching console command", "command", name)
	cmdErr := invoke(cmd, inv)

	for _, line := range inv.Lines() {
		d.buffer.AppendText(line)
	}
	if cmdErr != nil {
		cerr := &contypes.CommandError{Command: name, Err: cmdErr}
		d.appendError(cerr.Error())
		return Result{Command: name, Err: cerr}
	}
	return Result{Command: name}
}

// invoke runs the command, converting a panic into an ordinary error so
// a misbehaving handler cannot take down the host.
func invoke(cmd contypes.Command, inv *contypes.Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("console command panicked", "command", inv.Spec.Name, "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return cmd.Execute(inv)
}

func (d *Dispatcher) appendError(msg string) {
	d.buffer.Append(contypes.ScrollLine{Runs: []contypes.StyleRun{{
		Text:  msg,
		Style: contypes.Style{Foreground: contypes.ColorRed},
	}}})
}

// echoLine renders the submitted line the way a terminal would: faint
// prompt symbol, default-styled input.
func echoLine(prompt, raw string) contypes.ScrollLine {
	return contypes.ScrollLine{Runs: []contypes.StyleRun{
		{Text: prompt, Style: contypes.Style{Faint: true}},
		{Text: styledtext.Strip(raw)},
	}}
}

func hintLine(msg string) contypes.ScrollLine {
	return contypes.ScrollLine{Runs: []contypes.StyleRun{{
		Text:  msg,
		Style: contypes.Style{Faint: true},
	}}}
}
