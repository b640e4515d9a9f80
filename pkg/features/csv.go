package features

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/QiguangJiang/StatGraph/pkg/graph"
)

// CSVWriter writes the summary rows of a variant to a feature table on disk
type CSVWriter struct {
	path    string
	useCRLF bool
	file    *os.File
	writer  *csv.Writer
	rows    int
}

// NewCSVWriter creates a writer for the table at path. Nothing is touched
// on disk until Reset is called.
func NewCSVWriter(path string, useCRLF bool) *CSVWriter {
	return &CSVWriter{
		path:    path,
		useCRLF: useCRLF,
	}
}

// Reset creates the output directory if needed, deletes the table of a
// previous run and opens a fresh one
func (c *CSVWriter) Reset() error {
	if c.file != nil {
		return fmt.Errorf("feature table %s is already open", c.path)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	if err := DeleteTable(c.path); err != nil {
		return err
	}

	file, err := os.OpenFile(c.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not create feature table: %w", err)
	}

	c.file = file
	c.writer = csv.NewWriter(file)
	c.writer.UseCRLF = c.useCRLF
	c.rows = 0
	return nil
}

// Write appends one row to the table
func (c *CSVWriter) Write(summary graph.Summary) error {
	if c.writer == nil {
		return fmt.Errorf("feature table %s has not been reset", c.path)
	}
	if err := c.writer.Write(summary.Record()); err != nil {
		return fmt.Errorf("could not write to %s: %w", c.path, err)
	}
	c.rows++
	return nil
}

// Close flushes buffered rows and closes the table
func (c *CSVWriter) Close() error {
	if c.file == nil {
		return nil
	}
	c.writer.Flush()
	flushErr := c.writer.Error()
	closeErr := c.file.Close()
	c.file = nil
	c.writer = nil

	if flushErr != nil {
		return fmt.Errorf("could not write to %s: %w", c.path, flushErr)
	}
	return closeErr
}

// Path returns the location of the table
func (c *CSVWriter) Path() string {
	return c.path
}

// Rows returns the number of rows written since the last Reset
func (c *CSVWriter) Rows() int {
	return c.rows
}

// DeleteTable removes a feature table. A missing table is not an error.
func DeleteTable(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not delete feature table: %w", err)
	}
	return nil
}
