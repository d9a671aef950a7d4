// Package contypes defines the core types and interfaces shared across the
// developer console engine: command specifications, the command capability
// interface, tokens, and typed invocations. Keeping these in a pkg-level
// package lets host applications implement their own commands without
// importing any internal machinery.
package contypes

import (
	"fmt"
	"strconv"
)

// ArgType identifies the semantic type of a command argument. Tokens are
// coerced to this type during dispatch, before the command handler runs.
type ArgType int

const (
	// ArgTypeString accepts any token verbatim.
	ArgTypeString ArgType = iota
	// ArgTypeInt coerces the token with strconv.ParseInt (base 10).
	ArgTypeInt
	// ArgTypeFloat coerces the token with strconv.ParseFloat.
	ArgTypeFloat
	// ArgTypeBool coerces the token with strconv.ParseBool.
	ArgTypeBool
	// ArgTypeEnum accepts only tokens matching one of ArgSpec.Enum.
	ArgTypeEnum
)

// String returns the human-readable name of the type, used in argument
// error messages ("expected integer, got 'abc'").
func (t ArgType) String() string {
	switch t {
	case ArgTypeString:
		return "string"
	case ArgTypeInt:
		return "integer"
	case ArgTypeFloat:
		return "float"
	case ArgTypeBool:
		return "boolean"
	case ArgTypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ArgSpec describes a single declared argument of a command.
type ArgSpec struct {
	// Name is the argument identifier, unique within one CommandSpec.
	Name string
	// Type controls coercion of the raw token.
	Type ArgType
	// Required arguments must be present after positional and flag
	// matching; optional arguments fall back to Default when absent.
	Required bool
	// Default is the raw (uncoerced) fallback value for optional
	// arguments. Empty string with Required=false means the argument is
	// simply absent from the invocation when not supplied.
	Default string
	// HasDefault distinguishes "default is empty string" from "no
	// default at all".
	HasDefault bool
	// Enum lists the accepted values for ArgTypeEnum, matched
	// case-sensitively.
	Enum []string
}

// CommandSpec is the declared shape of a command: its unique name, a short
// description for help output, and its ordered argument list. The registry
// owns specs; everything else reads them.
type CommandSpec struct {
	Name        string
	Description string
	Args        []ArgSpec
}

// Usage renders a one-line usage string such as
// "set_volume <level:integer> [--verbose]".
func (s CommandSpec) Usage() string {
	usage := s.Name
	for _, arg := range s.Args {
		if arg.Required {
			usage += fmt.Sprintf(" <%s:%s>", arg.Name, arg.Type)
		} else {
			usage += fmt.Sprintf(" [%s:%s]", arg.Name, arg.Type)
		}
	}
	return usage
}

// Command is the capability interface every console command implements.
// The registry holds Command values, so argument schemas are inspectable
// without invoking anything.
type Command interface {
	// Spec returns the command's declared name and argument schema.
	Spec() CommandSpec
	// Execute runs the command with fully validated, coerced arguments.
	// A returned error is reported to the console as a command error; it
	// never propagates to the host.
	Execute(inv *Invocation) error
}

// Token is one unit of a tokenized input line. Quoted records whether any
// part of the token was quoted, which exempts it from flag-style parsing
// (a quoted "--foo" is a positional value, not a flag).
type Token struct {
	Text   string
	Quoted bool
}

// Invocation carries the coerced arguments of a single dispatch plus the
// reply channel back to the scrollback. It lives for exactly one Execute
// call.
type Invocation struct {
	// Spec is the resolved command spec.
	Spec CommandSpec
	// Host exposes the console facilities a command may act on.
	Host Host

	args  map[string]any
	lines []string
}

// NewInvocation builds an invocation from pre-coerced argument values.
// Dispatch is the usual producer; tests construct these directly.
func NewInvocation(spec CommandSpec, host Host, args map[string]any) *Invocation {
	if args == nil {
		args = make(map[string]any)
	}
	return &Invocation{Spec: spec, Host: host, args: args}
}

// Has reports whether the named argument was supplied (or defaulted).
func (inv *Invocation) Has(name string) bool {
	_, ok := inv.args[name]
	return ok
}

// String returns the named argument as a string. The zero value is
// returned for absent or differently-typed arguments.
func (inv *Invocation) String(name string) string {
	v, _ := inv.args[name].(string)
	return v
}

// Int returns the named argument as an int64.
func (inv *Invocation) Int(name string) int64 {
	v, _ := inv.args[name].(int64)
	return v
}

// Float returns the named argument as a float64.
func (inv *Invocation) Float(name string) float64 {
	v, _ := inv.args[name].(float64)
	return v
}

// Bool returns the named argument as a bool.
func (inv *Invocation) Bool(name string) bool {
	v, _ := inv.args[name].(bool)
	return v
}

// Reply queues one output line. Lines may carry ANSI styling; the
// dispatcher decodes them into style runs when appending to the
// scrollback.
func (inv *Invocation) Reply(line string) {
	inv.lines = append(inv.lines, line)
}

// Replyf queues one formatted output line.
func (inv *Invocation) Replyf(format string, args ...any) {
	inv.Reply(fmt.Sprintf(format, args...))
}

// Lines returns the queued reply lines in order.
func (inv *Invocation) Lines() []string {
	return inv.lines
}

// Host is the narrow view of the console session handed to executing
// commands. Built-ins like help, clear, and quit act through it; commands
// that only Reply can ignore it.
type Host interface {
	// CommandSpecs returns the specs of all registered commands in
	// lexicographic name order.
	CommandSpecs() []CommandSpec
	// ClearScrollback empties the scrollback buffer.
	ClearScrollback()
	// HistoryEntries returns submitted lines, oldest first.
	HistoryEntries() []string
	// RequestQuit asks the host runtime to close the console.
	RequestQuit()
}

// CoerceArg converts one raw token value to the typed value demanded by
// the arg spec. It is exported so argument-completion tooling and tests
// share the exact dispatch coercion rules.
func CoerceArg(spec ArgSpec, raw string) (any, error) {
	switch spec.Type {
	case ArgTypeString:
		return raw, nil
	case ArgTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got '%s'", raw)
		}
		return n, nil
	case ArgTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("expected float, got '%s'", raw)
		}
		return f, nil
	case ArgTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected boolean, got '%s'", raw)
		}
		return b, nil
	case ArgTypeEnum:
		for _, allowed := range spec.Enum {
			if raw == allowed {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("expected one of %v, got '%s'", spec.Enum, raw)
	default:
		return nil, fmt.Errorf("unsupported argument type %d", spec.Type)
	}
}
