package contypes

import "strings"

// Color is a 16-color terminal palette entry for a style run. ColorDefault
// means "whatever the renderer's default foreground is".
type Color int

// Palette values follow ANSI SGR ordering so decoding 30–37/90–97 is a
// direct offset.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Style is the visual attribute set of one run: a foreground color plus
// weight flags. The zero value is the default style.
type Style struct {
	Foreground Color
	Bold       bool
	Faint      bool
}

// IsDefault reports whether the style carries no attributes.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// StyleRun is a contiguous span of text sharing one style. Runs are
// immutable once constructed; a sequence of runs composes one logical
// output line.
type StyleRun struct {
	Text  string
	Style Style
}

// ScrollLine is one row of console output: an ordered sequence of style
// runs.
type ScrollLine struct {
	Runs []StyleRun
}

// PlainLine builds a single-run line in the default style.
func PlainLine(text string) ScrollLine {
	return ScrollLine{Runs: []StyleRun{{Text: text}}}
}

// Plain returns the line's text with all style information discarded.
func (l ScrollLine) Plain() string {
	var b strings.Builder
	for _, run := range l.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}
