// Package parser splits raw console input into shell-like tokens.
// Quoting rules follow POSIX sh: whitespace separates tokens, single and
// double quotes group whitespace, backslash escapes the next character
// outside single quotes.
package parser

import (
	"errors"
	"strings"
	"unicode"

	"devconsole/pkg/contypes"
)

// ErrUnterminatedQuote is returned when a quote is opened but never
// closed. No partial token list accompanies it.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ErrTrailingBackslash is returned when the line ends in the middle of a
// backslash escape.
var ErrTrailingBackslash = errors.New("trailing backslash")

// Tokenize splits line into ordered tokens. Empty or whitespace-only
// input yields an empty slice, not an error. Tokens record whether any
// part of them was quoted so the dispatcher can exempt quoted tokens from
// flag parsing.
func Tokenize(line string) ([]contypes.Token, error) {
	var (
		tokens  []contypes.Token
		current strings.Builder
		quoted  bool
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		tokens = append(tokens, contypes.Token{Text: current.String(), Quoted: quoted})
		current.Reset()
		quoted = false
		started = false
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			flush()

		case r == '\\':
			if i+1 >= len(runes) {
				return nil, ErrTrailingBackslash
			}
			i++
			current.WriteRune(runes[i])
			started = true

		case r == '\'':
			end := indexRune(runes, i+1, '\'')
			if end < 0 {
				return nil, ErrUnterminatedQuote
			}
			current.WriteString(string(runes[i+1 : end]))
			quoted = true
			started = true
			i = end

		case r == '"':
			i++
			closed := false
			for i < len(runes) {
				switch runes[i] {
				case '"':
					closed = true
				case '\\':
					if i+1 >= len(runes) {
						return nil, ErrUnterminatedQuote
					}
					i++
					current.WriteRune(runes[i])
				default:
					current.WriteRune(runes[i])
				}
				if closed {
					break
				}
				i++
			}
			if !closed {
				return nil, ErrUnterminatedQuote
			}
			quoted = true
			started = true

		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	return tokens, nil
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
