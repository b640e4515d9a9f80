package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(contents string) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(contents))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// roadTable renders a labeled table with one row per ID
func roadTable(ids []string, flags []string) string {
	var b strings.Builder
	b.WriteString("ID,DLC,Data,Flag\n")
	for i, id := range ids {
		fmt.Fprintf(&b, "%s,8,0011223344556677,%s,,\n", id, flags[i])
	}
	return b.String()
}

func collectWindows(t *testing.T, w *Windower) []Window {
	var windows []Window
	for {
		window, err := w.Next()
		if errors.Is(err, io.EOF) {
			return windows
		}
		require.Nil(t, err)
		windows = append(windows, window)
	}
}

func TestWindowerDropsTrailingRecords(t *testing.T) {
	ids := make([]string, 205)
	flags := make([]string, 205)
	for i := range ids {
		ids[i] = fmt.Sprintf("%03X", i%17)
		flags[i] = "0"
	}

	w := NewWindower(newTestReader(roadTable(ids, flags)), "road.csv", 200, Layout{IDColumn: 0, Labeled: true})
	windows := collectWindows(t, w)

	require.Len(t, windows, 1)
	assert.Len(t, windows[0].IDs, 200)
	assert.Equal(t, 0, windows[0].Index)
	assert.Equal(t, graph.Normal, windows[0].Label)
	assert.Equal(t, 205, w.Rows())
	assert.Equal(t, 1, w.Windows())
	assert.Equal(t, 5, w.Dropped())
}

func TestWindowerLabels(t *testing.T) {
	ids := []string{"A", "A", "B", "A", "B", "C", "C", "C", "C", "C"}
	flags := []string{"0", "0", "1.0", "0", "0", "0", "0.0", "0", "0", "0"}

	w := NewWindower(newTestReader(roadTable(ids, flags)), "road.csv", 5, Layout{IDColumn: 0, Labeled: true})
	windows := collectWindows(t, w)

	require.Len(t, windows, 2)
	assert.Equal(t, []string{"A", "A", "B", "A", "B"}, windows[0].IDs)
	assert.Equal(t, graph.Attack, windows[0].Label)
	assert.Equal(t, 1, windows[1].Index)
	assert.Equal(t, graph.Normal, windows[1].Label)
	assert.Equal(t, 0, w.Dropped())
}

func TestWindowerUnlabeled(t *testing.T) {
	table := "Timestamp,ID,DLC\n" +
		"1478198376.389427,0316,8\n" +
		"1478198376.389636,018f,8\n" +
		"1478198376.389864,0260,8\n"

	w := NewWindower(newTestReader(table), "normal_16_id.csv", 3, Layout{IDColumn: 1})
	windows := collectWindows(t, w)

	require.Len(t, windows, 1)
	assert.Equal(t, []string{"0316", "018f", "0260"}, windows[0].IDs)
	assert.Equal(t, graph.NoLabel, windows[0].Label)
}

func TestWindowerEmptyTable(t *testing.T) {
	w := NewWindower(newTestReader(""), "empty.csv", 200, Layout{})
	assert.Empty(t, collectWindows(t, w))

	w = NewWindower(newTestReader("ID,Flag\n"), "header.csv", 200, Layout{Labeled: true})
	assert.Empty(t, collectWindows(t, w))
	assert.Equal(t, 0, w.Dropped())
}

func TestWindowerMalformedRow(t *testing.T) {
	table := "ID,Flag\n" +
		"0C1,0\n" +
		"0C2,0\n" +
		"0C3,,,\n" +
		"0C4,0\n"

	w := NewWindower(newTestReader(table), "attack.csv", 200, Layout{IDColumn: 0, Labeled: true})
	_, err := w.Next()
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRow))

	var rowErr *MalformedRowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, "attack.csv", rowErr.File)
	assert.Equal(t, 4, rowErr.Row)
}

func TestWindowerBadQuoting(t *testing.T) {
	table := "ID,Flag\n" +
		"0C1,0\n" +
		"0C2,\"0\"x\"\n"

	reader := csv.NewReader(strings.NewReader(table))
	reader.FieldsPerRecord = -1

	w := NewWindower(reader, "quoted.csv", 200, Layout{IDColumn: 0, Labeled: true})
	_, err := w.Next()
	require.NotNil(t, err)

	var rowErr *MalformedRowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
}

func TestWindowerStaysExhausted(t *testing.T) {
	w := NewWindower(newTestReader(roadTable([]string{"A", "B", "C"}, []string{"0", "0", "0"})), "road.csv", 2, Layout{Labeled: true})
	assert.Len(t, collectWindows(t, w), 1)

	_, err := w.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, w.Dropped())
	assert.Equal(t, 3, w.Rows())
}
