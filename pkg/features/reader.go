package features

import (
	"errors"
	"fmt"
	"io"

	"github.com/QiguangJiang/StatGraph/parser/files"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
)

// ReadTable loads every row of a feature table
func ReadTable(path string) ([]graph.Summary, error) {
	reader, closer, err := files.OpenTable(path)
	if err != nil {
		return nil, err
	}
	defer closer()

	var rows []graph.Summary
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}

		summary, err := graph.ParseRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%s row %d: %w", path, line, err)
		}
		rows = append(rows, summary)
	}
	return rows, nil
}
