package usagestats

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	elementPackage  = "package"
	elementEvent    = "event"
	elementFilename = "filename"
)

var (
	// ErrMissingAttribute is wrapped when a record lacks a required attribute.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrEmptyDocument is wrapped when the input holds no root element.
	ErrEmptyDocument = errors.New("no root element")

	// ErrTrailingContent is wrapped when elements or text sit outside the
	// root element.
	ErrTrailingContent = errors.New("content outside document element")

	// ErrOffsetOutOfRange is wrapped when base timestamp plus offset does
	// not fit in an int64.
	ErrOffsetOutOfRange = errors.New("offset out of range for base timestamp")
)

// ParseBaseTimestamp returns the base timestamp encoded in the file name
// of path. Leading directories are ignored.
func ParseBaseTimestamp(path string) (int64, error) {
	name := filepath.Base(path)
	base, err := strconv.ParseInt(name, 10, 64)
	if err != nil {
		return 0, &MalformedRecordError{
			Path:    path,
			Element: elementFilename,
			Value:   name,
			Err:     errors.Unwrap(err),
		}
	}
	return base, nil
}

// Open reads the usage-stats file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	base, err := ParseBaseTimestamp(path)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(f, base)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		var me *MalformedRecordError
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Decode reads every package and event element from r, at any depth.
// The whole input is consumed before returning, so a document that turns
// out to be malformed yields no records at all.
func Decode(r io.Reader, base int64) (*Document, error) {
	doc := &Document{Base: base}
	dec := xml.NewDecoder(r)

	sawRoot := false
	closed := false
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			if closed {
				return nil, &ParseError{Err: fmt.Errorf("line %d: <%s>: %w", line, t.Name.Local, ErrTrailingContent)}
			}
			sawRoot = true
			depth++
			if err := doc.collect(t, line); err != nil {
				return nil, err
			}
		case xml.EndElement:
			depth--
			if depth == 0 {
				closed = true
			}
		case xml.CharData:
			if (closed || !sawRoot) && len(bytes.TrimSpace(t)) > 0 {
				line, _ := dec.InputPos()
				return nil, &ParseError{Err: fmt.Errorf("line %d: %w", line, ErrTrailingContent)}
			}
		}
	}

	if !sawRoot {
		return nil, &ParseError{Err: ErrEmptyDocument}
	}
	return doc, nil
}

// collect appends start to doc when it is a package or event element.
func (d *Document) collect(start xml.StartElement, line int) error {
	switch start.Name.Local {
	case elementPackage:
		p, err := decodePackage(start, d.Base, len(d.Packages)+1, line)
		if err != nil {
			return err
		}
		d.Packages = append(d.Packages, p)
	case elementEvent:
		e, err := decodeEvent(start, d.Base, len(d.Events)+1, line)
		if err != nil {
			return err
		}
		d.Events = append(d.Events, e)
	}
	return nil
}

func decodePackage(start xml.StartElement, base int64, index, line int) (PackageSummary, error) {
	a := attrReader{attrs: start.Attr, element: elementPackage, index: index, line: line}
	p := PackageSummary{Line: line}
	p.Package = a.str("package")
	p.LastTimeActive = a.offset("lastTimeActive", base)
	p.LastEvent, p.LastEventText = a.code("lastEvent")
	if a.err != nil {
		return PackageSummary{}, a.err
	}
	return p, nil
}

func decodeEvent(start xml.StartElement, base int64, index, line int) (TimelineEvent, error) {
	a := attrReader{attrs: start.Attr, element: elementEvent, index: index, line: line}
	e := TimelineEvent{Line: line}
	e.Package = a.str("package")
	e.Time = a.offset("time", base)
	e.Type, e.TypeText = a.code("type")
	if a.err != nil {
		return TimelineEvent{}, a.err
	}
	return e, nil
}

// attrReader looks up attributes of one element and keeps the first error.
type attrReader struct {
	attrs   []xml.Attr
	element string
	index   int
	line    int
	err     error
}

func (a *attrReader) lookup(name string) (string, bool) {
	if a.err != nil {
		return "", false
	}
	for _, attr := range a.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	a.fail(name, "", ErrMissingAttribute)
	return "", false
}

func (a *attrReader) str(name string) string {
	v, _ := a.lookup(name)
	return v
}

func (a *attrReader) integer(name string) int64 {
	v, ok := a.lookup(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		a.fail(name, v, numErr(err))
		return 0
	}
	return n
}

// offset reads a millisecond offset and checks that base+offset fits in
// an int64.
func (a *attrReader) offset(name string, base int64) int64 {
	n := a.integer(name)
	if a.err != nil {
		return 0
	}
	if (n > 0 && base > math.MaxInt64-n) || (n < 0 && base < math.MinInt64-n) {
		v, _ := a.lookup(name)
		a.fail(name, v, ErrOffsetOutOfRange)
		return 0
	}
	return n
}

// code reads an event code along with the attribute text it was written as.
func (a *attrReader) code(name string) (EventType, string) {
	n := a.integer(name)
	if a.err != nil {
		return 0, ""
	}
	v, _ := a.lookup(name)
	return EventType(n), v
}

func (a *attrReader) fail(name, value string, err error) {
	a.err = &MalformedRecordError{
		Element: a.element,
		Index:   a.index,
		Line:    a.line,
		Attr:    name,
		Value:   value,
		Err:     err,
	}
}

// numErr drops the strconv wrapper, whose message repeats the input.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return fmt.Errorf("%q: %w", ne.Num, ne.Err)
	}
	return err
}
