package features

import (
	"github.com/QiguangJiang/StatGraph/pkg/graph"
)

// Writer receives the summary rows of one variant. Reset discards any output
// of a previous run and must be called before the first Write.
type Writer interface {
	Reset() error
	Write(summary graph.Summary) error
	Close() error
}

// multiWriter duplicates every call to all of its writers
type multiWriter struct {
	writers []Writer
}

// MultiWriter creates a writer that duplicates its writes to all the provided
// writers. The first error aborts the call.
func MultiWriter(writers ...Writer) Writer {
	all := make([]Writer, 0, len(writers))
	for _, w := range writers {
		if mw, ok := w.(*multiWriter); ok {
			all = append(all, mw.writers...)
		} else {
			all = append(all, w)
		}
	}
	return &multiWriter{all}
}

func (t *multiWriter) Reset() error {
	for _, w := range t.writers {
		if err := w.Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (t *multiWriter) Write(summary graph.Summary) error {
	for _, w := range t.writers {
		if err := w.Write(summary); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer even if one fails and returns the first error
func (t *multiWriter) Close() error {
	var firstErr error
	for _, w := range t.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
