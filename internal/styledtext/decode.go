// Package styledtext decodes ANSI-styled text into structured style runs.
// The scrollback stores runs, not raw escape bytes, so renderers never
// have to understand terminal sequences. Decoding is a small explicit
// state machine; anything it does not recognize is stripped rather than
// leaked into the visible log.
package styledtext

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"devconsole/pkg/contypes"
)

const (
	esc = '\x1b'
	bel = '\a'
)

// Decode parses raw text containing SGR escape sequences into ordered
// style runs. Recognized attributes: reset, bold, faint, the 16 standard
// foreground colors, and default-foreground. Unrecognized or malformed
// sequences are dropped. Plain text yields one default-styled run; empty
// input yields no runs.
func Decode(raw string) []contypes.StyleRun {
	var (
		runs    []contypes.StyleRun
		current strings.Builder
		style   contypes.Style
	)

	flush := func() {
		if current.Len() == 0 {
			return
		}
		runs = append(runs, contypes.StyleRun{Text: current.String(), Style: style})
		current.Reset()
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != esc {
			current.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break // dangling ESC at end of input: dropped
		}

		switch runes[i+1] {
		case '[':
			params, final, next := scanCSI(runes, i+2)
			if final == 'm' {
				updated, ok := applySGR(style, params)
				if ok && updated != style {
					flush()
					style = updated
				}
			}
			// Non-SGR and malformed CSI sequences are stripped.
			i = next - 1

		case ']':
			i = scanOSC(runes, i+2) - 1

		default:
			// Two-character escape (ESC c, ESC ( B, ...): strip both.
			i++
		}
	}
	flush()

	return runs
}

// DecodeLine decodes raw text into a complete scroll line.
func DecodeLine(raw string) contypes.ScrollLine {
	return contypes.ScrollLine{Runs: Decode(raw)}
}

// Strip returns raw with every escape sequence removed, for
// style-unaware width measurement and matching.
func Strip(raw string) string {
	return ansi.Strip(raw)
}

// scanCSI consumes parameter and intermediate bytes starting at start
// (just past "ESC["), returning the raw parameter string, the final byte
// (0 when the sequence is unterminated), and the index just past the
// sequence.
func scanCSI(runes []rune, start int) (params string, final rune, next int) {
	i := start
	for i < len(runes) {
		r := runes[i]
		if r >= 0x40 && r <= 0x7e {
			return string(runes[start:i]), r, i + 1
		}
		if r < 0x20 || r > 0x3f {
			// Not a valid parameter/intermediate byte: abandon the
			// sequence and strip what was consumed so far.
			return "", 0, i
		}
		i++
	}
	return "", 0, i
}

// scanOSC consumes an OSC sequence body starting just past "ESC]",
// terminated by BEL or ESC\, returning the index past the terminator.
func scanOSC(runes []rune, start int) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == bel {
			return i + 1
		}
		if runes[i] == esc && i+1 < len(runes) && runes[i+1] == '\\' {
			return i + 2
		}
	}
	return len(runes)
}

// applySGR folds one SGR parameter list into style. It reports ok=false
// when the parameter string is malformed, in which case the whole
// sequence is ignored.
func applySGR(style contypes.Style, params string) (contypes.Style, bool) {
	if params == "" {
		return contypes.Style{}, true // bare ESC[m is reset
	}

	for _, part := range strings.Split(params, ";") {
		if part == "" {
			style = contypes.Style{}
			continue
		}
		code, err := strconv.Atoi(part)
		if err != nil {
			return style, false
		}
		switch {
		case code == 0:
			style = contypes.Style{}
		case code == 1:
			style.Bold = true
		case code == 2:
			style.Faint = true
		case code == 22:
			style.Bold = false
			style.Faint = false
		case code >= 30 && code <= 37:
			style.Foreground = contypes.ColorBlack + contypes.Color(code-30)
		case code == 39:
			style.Foreground = contypes.ColorDefault
		case code >= 90 && code <= 97:
			style.Foreground = contypes.ColorBrightBlack + contypes.Color(code-90)
		case code == 38 || code == 48:
			// Extended color forms (38;5;n / 38;2;r;g;b) are outside the
			// run model; drop the rest of the sequence.
			return style, true
		}
	}
	return style, true
}
