package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/QiguangJiang/StatGraph/pkg/graph"
)

// Window is a run of consecutive records of one input file
type Window struct {
	Index int // 0-based position of the window within its file
	IDs   []string
	Label graph.Label
}

// Windower cuts the rows of one input table into windows of a fixed size.
// Windows never overlap; trailing rows which do not fill a window are dropped.
type Windower struct {
	reader    *csv.Reader
	file      string
	size      int
	layout    Layout
	header    bool
	done      bool
	rows      int
	windows   int
	remainder int
}

// NewWindower creates a windower over reader. file names the table in errors.
func NewWindower(reader *csv.Reader, file string, size int, layout Layout) *Windower {
	return &Windower{
		reader: reader,
		file:   file,
		size:   size,
		layout: layout,
	}
}

// Next returns the next full window. It returns io.EOF once the table is
// exhausted, after which Dropped reports the number of discarded rows.
func (w *Windower) Next() (Window, error) {
	if w.done {
		return Window{}, io.EOF
	}
	if !w.header {
		if _, err := w.reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				w.done = true
				return Window{}, io.EOF
			}
			return Window{}, w.rowError(1, err)
		}
		w.header = true
	}

	window := Window{
		Index: w.windows,
		IDs:   make([]string, 0, w.size),
	}
	malicious := false

	for len(window.IDs) < w.size {
		row, err := w.reader.Read()
		if errors.Is(err, io.EOF) {
			w.remainder = len(window.IDs)
			w.done = true
			return Window{}, io.EOF
		}
		if err != nil {
			return Window{}, w.rowError(w.rows+2, err)
		}
		line, _ := w.reader.FieldPos(0)
		w.rows++

		rec, reason := ParseRecord(row, w.layout)
		if reason != "" {
			return Window{}, &MalformedRowError{File: w.file, Row: line, Reason: reason}
		}
		window.IDs = append(window.IDs, rec.ID)
		malicious = malicious || rec.Malicious
	}

	if w.layout.Labeled {
		window.Label = graph.LabelFor(malicious)
	}
	w.windows++
	return window, nil
}

func (w *Windower) rowError(line int, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedRowError{File: w.file, Row: parseErr.Line, Reason: parseErr.Err.Error()}
	}
	return err
}

// Rows returns the number of data rows read so far
func (w *Windower) Rows() int {
	return w.rows
}

// Windows returns the number of windows emitted so far
func (w *Windower) Windows() int {
	return w.windows
}

// Dropped returns the number of trailing rows which did not fill a window
func (w *Windower) Dropped() int {
	return w.remainder
}
