package contypes

import "fmt"

// The console error taxonomy. Every class is recoverable: the dispatcher
// catches it, renders a styled line into the scrollback, and returns.
// Nothing here ever reaches the host runtime as a failure.

// ParseError reports malformed input, currently only unterminated quotes.
// It wraps the tokenizer's underlying error.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

// Unwrap exposes the tokenizer error for errors.Is checks.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownCommandError reports a command name with no registry entry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// ArgumentError reports a validation or coercion failure for one named
// argument. Reason is human-readable ("expected integer, got 'abc'").
type ArgumentError struct {
	Command string
	Arg     string
	Reason  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument '%s': %s", e.Arg, e.Reason)
}

// CommandError wraps a domain failure reported by a command handler, or a
// recovered handler panic.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap exposes the handler's error for errors.Is checks.
func (e *CommandError) Unwrap() error {
	return e.Err
}
