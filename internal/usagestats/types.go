package usagestats

// PackageSummary is the last recorded activity of one package.
type PackageSummary struct {
	Package        string
	LastTimeActive int64 // ms relative to Document.Base
	LastEvent      EventType
	LastEventText  string // lastEvent as written in the file
	Line           int    // source line of the element
}

// Label resolves LastEvent. Unknown codes keep the text they were written
// as.
func (p PackageSummary) Label() string {
	return labelOf(p.LastEvent, p.LastEventText)
}

// TimelineEvent is one entry of the event log.
type TimelineEvent struct {
	Package  string
	Time     int64 // ms relative to Document.Base
	Type     EventType
	TypeText string
	Line     int
}

// Label resolves Type the same way PackageSummary.Label does.
func (e TimelineEvent) Label() string {
	return labelOf(e.Type, e.TypeText)
}

func labelOf(code EventType, text string) string {
	if code.Known() || text == "" {
		return code.Label()
	}
	return text
}

// Document holds the records of one usage-stats file in document order.
type Document struct {
	Path     string
	Base     int64 // ms since the Unix epoch, taken from the file name
	Packages []PackageSummary
	Events   []TimelineEvent
}

// VisiblePackages returns the package summaries whose last event is not
// NONE, keeping document order. Events are never filtered this way.
func (d *Document) VisiblePackages() []PackageSummary {
	visible := make([]PackageSummary, 0, len(d.Packages))
	for _, p := range d.Packages {
		if p.Label() == NoneLabel {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// Absolute returns the instant of a record offset in ms since the epoch.
func (d *Document) Absolute(offset int64) int64 {
	return d.Base + offset
}
