package usagestats

import (
	"errors"
	"fmt"
	"io/fs"
)

// ParseError reports a file that is missing, unreadable or not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("failed to read usage stats file %s: %v", e.Path, pathErr.Err)
	}
	if e.Path == "" {
		return fmt.Sprintf("failed to parse usage stats: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse usage stats file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedRecordError reports a record, or the file name, that does not
// carry the expected values.
type MalformedRecordError struct {
	Path    string
	Element string // "package", "event" or "filename"
	Index   int    // ordinal among elements of the same kind, from 1
	Line    int
	Attr    string
	Value   string
	Err     error
}

func (e *MalformedRecordError) Error() string {
	if e.Element == elementFilename {
		return fmt.Sprintf("file name %q is not a millisecond timestamp: %v", e.Value, e.Err)
	}
	msg := fmt.Sprintf("%s #%d", e.Element, e.Index)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return fmt.Sprintf("%s: attribute %q: %v", msg, e.Attr, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// IsFilename reports whether the error concerns the file name rather than
// a record inside the file.
func (e *MalformedRecordError) IsFilename() bool {
	return e.Element == elementFilename
}
