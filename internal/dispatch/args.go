package dispatch

import (
	"strings"

	"devconsole/pkg/contypes"
)

// bindArgs matches the tokens following the command name against the
// spec's declared arguments and coerces each to its semantic type.
// Unquoted "--name" tokens bind by name; everything else fills the
// declared arguments in order. Validation is all-or-nothing: the first
// failure aborts binding and nothing is invoked.
func bindArgs(spec contypes.CommandSpec, tokens []contypes.Token, host contypes.Host) (*contypes.Invocation, *contypes.ArgumentError) {
	byName := make(map[string]contypes.ArgSpec, len(spec.Args))
	for _, arg := range spec.Args {
		byName[arg.Name] = arg
	}

	values := make(map[string]any)
	supplied := make(map[string]bool)

	setValue := func(arg contypes.ArgSpec, raw string) *contypes.ArgumentError {
		v, err := contypes.CoerceArg(arg, raw)
		if err != nil {
			return &contypes.ArgumentError{Command: spec.Name, Arg: arg.Name, Reason: err.Error()}
		}
		values[arg.Name] = v
		supplied[arg.Name] = true
		return nil
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if isFlag(tok) {
			name, inline, hasInline := splitFlag(tok.Text)
			arg, known := byName[name]
			if !known {
				return nil, &contypes.ArgumentError{Command: spec.Name, Arg: name, Reason: "unknown flag"}
			}

			raw := inline
			switch {
			case hasInline:
			case arg.Type == contypes.ArgTypeBool && (i+1 >= len(tokens) || isFlag(tokens[i+1])):
				// A bare boolean flag means true.
				raw = "true"
			case i+1 < len(tokens):
				i++
				raw = tokens[i].Text
			default:
				return nil, &contypes.ArgumentError{Command: spec.Name, Arg: name, Reason: "flag requires a value"}
			}

			if argErr := setValue(arg, raw); argErr != nil {
				return nil, argErr
			}
			continue
		}

		arg, ok := nextPositional(spec, supplied)
		if !ok {
			return nil, &contypes.ArgumentError{Command: spec.Name, Arg: tok.Text, Reason: "unexpected argument"}
		}
		if argErr := setValue(arg, tok.Text); argErr != nil {
			return nil, argErr
		}
	}

	for _, arg := range spec.Args {
		if supplied[arg.Name] {
			continue
		}
		if arg.HasDefault {
			if argErr := setValue(arg, arg.Default); argErr != nil {
				return nil, argErr
			}
			continue
		}
		if arg.Required {
			return nil, &contypes.ArgumentError{Command: spec.Name, Arg: arg.Name, Reason: "required argument missing"}
		}
	}

	return contypes.NewInvocation(spec, host, values), nil
}

// isFlag reports whether the token should be parsed as a named flag.
// Quoted tokens are always positional values, so a literal "--verbose"
// string can be passed by quoting it.
func isFlag(tok contypes.Token) bool {
	return !tok.Quoted && strings.HasPrefix(tok.Text, "--") && len(tok.Text) > 2
}

// splitFlag separates "--name=value" into name and inline value.
func splitFlag(text string) (name, inline string, hasInline bool) {
	body := strings.TrimPrefix(text, "--")
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		return body[:idx], body[idx+1:], true
	}
	return body, "", false
}

// nextPositional returns the first declared argument not yet supplied.
func nextPositional(spec contypes.CommandSpec, supplied map[string]bool) (contypes.ArgSpec, bool) {
	for _, arg := range spec.Args {
		if !supplied[arg.Name] {
			return arg, true
		}
	}
	return contypes.ArgSpec{}, false
}
