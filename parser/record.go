package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRow is wrapped by every MalformedRowError
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError reports an input row which cannot be read as a record
type MalformedRowError struct {
	File   string
	Row    int // 1-based line of the input table
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: %s row %d: %s", ErrMalformedRow.Error(), e.File, e.Row, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedRow)
func (e *MalformedRowError) Unwrap() error {
	return ErrMalformedRow
}

// Layout describes where a variant keeps its fields
type Layout struct {
	IDColumn int
	Labeled  bool
}

// MinColumns is the number of non-empty columns a row must keep after trimming
func (l Layout) MinColumns() int {
	if l.Labeled {
		return l.IDColumn + 2
	}
	return l.IDColumn + 1
}

// Record is a single bus message reduced to its arbitration ID and flag
type Record struct {
	ID        string
	Malicious bool
}

// TrimRow strips empty and whitespace only fields from the right of a row
func TrimRow(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return row[:end]
}

// ParseRecord reads one input row. The flag of a labeled row is its last
// non-empty field; a flag of exactly 1 marks the message as malicious.
// The returned reason is empty when the row is valid.
func ParseRecord(row []string, layout Layout) (Record, string) {
	fields := TrimRow(row)
	if len(fields) < layout.MinColumns() {
		return Record{}, fmt.Sprintf("expected at least %d columns, found %d", layout.MinColumns(), len(fields))
	}

	rec := Record{ID: strings.TrimSpace(fields[layout.IDColumn])}
	if rec.ID == "" {
		return Record{}, fmt.Sprintf("empty ID in column %d", layout.IDColumn)
	}

	if !layout.Labeled {
		return rec, ""
	}

	raw := strings.TrimSpace(fields[len(fields)-1])
	flag, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Record{}, fmt.Sprintf("flag %q is not numeric", raw)
	}
	rec.Malicious = flag == 1.0
	return rec, ""
}
