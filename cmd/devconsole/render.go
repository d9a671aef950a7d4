package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"devconsole/internal/console"
	"devconsole/pkg/contypes"
)

// renderer prints newly appended scrollback lines to the terminal,
// translating style runs back into escape sequences at whatever color
// depth the terminal supports.
type renderer struct {
	out *termenv.Output
	// printed mirrors Session.LinesAppended as of the last flush. The
	// comparison must use the monotonic counter, not len(Lines): once
	// the scrollback ring is full its length stops growing while lines
	// keep arriving.
	printed int
	skip    string
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{out: termenv.NewOutput(w)}
}

// skipEcho suppresses the next occurrence of the dispatcher's echo
// line: the terminal already shows what the user typed.
func (r *renderer) skipEcho(echo string) {
	r.skip = echo
}

// flush prints every scrollback line appended since the last flush.
// New lines are the tail of Lines: anything appended since last flush
// that eviction (or a clear in the same dispatch) has not already
// dropped.
func (r *renderer) flush(session *console.Session) {
	lines := session.Lines()
	total := session.LinesAppended()
	fresh := total - r.printed
	if fresh > len(lines) {
		fresh = len(lines)
	}
	for _, line := range lines[len(lines)-fresh:] {
		if r.skip != "" && line.Plain() == r.skip {
			r.skip = ""
			continue
		}
		fmt.Fprintln(r.out, r.render(line))
	}
	r.printed = total
}

func (r *renderer) render(line contypes.ScrollLine) string {
	var rendered string
	for _, run := range line.Runs {
		s := r.out.String(run.Text)
		if run.Style.Bold {
			s = s.Bold()
		}
		if run.Style.Faint {
			s = s.Faint()
		}
		if run.Style.Foreground != contypes.ColorDefault {
			s = s.Foreground(ansiColor(run.Style.Foreground))
		}
		rendered += s.String()
	}
	return rendered
}

// ansiColor maps the engine palette onto the terminal's 16-color
// palette; the palettes share ordering, offset by the default entry.
func ansiColor(c contypes.Color) termenv.Color {
	return termenv.ANSIColor(int(c) - 1)
}
