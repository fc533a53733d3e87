// Package output renders decoded usage-stats documents as text.
//
// Every record becomes one line of the form
//
//	2015-08-07 16:01:36 :: com.truecaller :: MOVE_TO_BACKGROUND - component moved to the background
//
// grouped under a "Package last activity" and a "Timeline" section.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/usagestats/internal/usagestats"
)

// TimeFormat is the layout of every rendered timestamp.
const TimeFormat = "2006-01-02 15:04:05"

// Section headers.
const (
	PackagesHeader = ":: Package last activity ::"
	TimelineHeader = ":: Timeline ::"
)

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
)

// IsTerminal returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Plain io.Writer values such as
// *bytes.Buffer are never terminals.
func IsTerminal(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// FormatTimestamp renders an absolute instant in ms since the epoch at
// second resolution in loc. Sub-second parts are truncated toward zero.
func FormatTimestamp(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ms/1000, 0).In(loc).Format(TimeFormat)
}

// FormatLine joins the three fields of a record line.
func FormatLine(timestamp, pkg, label string) string {
	return timestamp + " :: " + pkg + " :: " + label
}

// Renderer writes documents to an output stream.
type Renderer struct {
	w        io.Writer
	loc      *time.Location
	colorize bool
}

// NewRenderer creates a renderer writing to w with timestamps in loc.
// Headers are styled when w is a terminal.
func NewRenderer(w io.Writer, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{w: w, loc: loc, colorize: IsTerminal(w)}
}

// SetColor overrides terminal detection.
func (r *Renderer) SetColor(enabled bool) {
	r.colorize = enabled
}

// Render writes both sections for doc.
func (r *Renderer) Render(doc *usagestats.Document) error {
	if err := r.RenderPackages(doc); err != nil {
		return err
	}
	return r.RenderTimeline(doc)
}

// RenderPackages writes the package section. Packages whose last event is
// NONE are left out.
func (r *Renderer) RenderPackages(doc *usagestats.Document) error {
	if err := r.header(PackagesHeader); err != nil {
		return err
	}
	for _, p := range doc.VisiblePackages() {
		if err := r.line(doc.Absolute(p.LastTimeActive), p.Package, p.Label()); err != nil {
			return err
		}
	}
	return nil
}

// RenderTimeline writes the timeline section, one line per event.
func (r *Renderer) RenderTimeline(doc *usagestats.Document) error {
	if err := r.header(TimelineHeader); err != nil {
		return err
	}
	for _, e := range doc.Events {
		if err := r.line(doc.Absolute(e.Time), e.Package, e.Label()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) header(title string) error {
	if r.colorize {
		title = colorBold + title + colorReset
	}
	_, err := fmt.Fprintf(r.w, "\n\n%s\n", title)
	return err
}

func (r *Renderer) line(ms int64, pkg, label string) error {
	_, err := fmt.Fprintln(r.w, FormatLine(FormatTimestamp(ms, r.loc), pkg, label))
	return err
}
