package graph

import (
	"fmt"
	"strconv"
)

// Label marks whether a window contained attack traffic
type Label string

const (
	// NoLabel is used for windows of label free sources
	NoLabel Label = ""
	// Attack marks a window with at least one malicious record
	Attack Label = "T"
	// Normal marks a window without malicious records
	Normal Label = "R"
)

// LabelFor returns the label of a window of a labeled source
func LabelFor(malicious bool) Label {
	if malicious {
		return Attack
	}
	return Normal
}

// FieldCount is the number of statistics in a summary row
const FieldCount = 6

// Header names the summary fields in their fixed row order
var Header = []string{
	"node_count", "edge_count", "max_degree", "max_in_degree", "max_out_degree", "max_weight",
}

// Summary holds the degree statistics of one window graph
type Summary struct {
	Nodes        int   `bson:"nodes" json:"node_count"`
	Edges        int   `bson:"edges" json:"edge_count"`
	MaxDegree    int   `bson:"max_degree" json:"max_degree"`
	MaxInDegree  int   `bson:"max_in_degree" json:"max_in_degree"`
	MaxOutDegree int   `bson:"max_out_degree" json:"max_out_degree"`
	MaxWeight    int   `bson:"max_weight" json:"max_weight"`
	Label        Label `bson:"label,omitempty" json:"label,omitempty"`
}

// Summarize reduces the adjacency matrix of a window graph to its degree
// statistics. Degrees count distinct edges: the in-degree of a node is the
// number of present cells in its column, the out-degree the number in its row.
func Summarize(g *Graph, label Label) Summary {
	n := g.NodeCount()
	in := make([]int, n)
	out := make([]int, n)

	summary := Summary{Nodes: n, Label: label}

	for i := 0; i < n; i++ {
		row := g.weights[i*g.size : i*g.size+n]
		for j, w := range row {
			if w <= 0 {
				continue
			}
			out[i]++
			in[j]++
			summary.Edges++
			if w > summary.MaxWeight {
				summary.MaxWeight = w
			}
		}
	}

	for i := 0; i < n; i++ {
		if in[i] > summary.MaxInDegree {
			summary.MaxInDegree = in[i]
		}
		if out[i] > summary.MaxOutDegree {
			summary.MaxOutDegree = out[i]
		}
		if in[i]+out[i] > summary.MaxDegree {
			summary.MaxDegree = in[i] + out[i]
		}
	}
	return summary
}

// Values returns the statistics in their fixed row order
func (s Summary) Values() [FieldCount]int {
	return [FieldCount]int{s.Nodes, s.Edges, s.MaxDegree, s.MaxInDegree, s.MaxOutDegree, s.MaxWeight}
}

// Record renders the summary as a table row, label last if present
func (s Summary) Record() []string {
	record := make([]string, 0, FieldCount+1)
	for _, v := range s.Values() {
		record = append(record, strconv.Itoa(v))
	}
	if s.Label != NoLabel {
		record = append(record, string(s.Label))
	}
	return record
}

// ParseRecord reads a table row written by Record. Numbers rendered as
// floats ("3.0") are accepted since older tables were written that way.
func ParseRecord(record []string) (Summary, error) {
	if len(record) != FieldCount && len(record) != FieldCount+1 {
		return Summary{}, fmt.Errorf("expected %d or %d fields, found %d", FieldCount, FieldCount+1, len(record))
	}

	var values [FieldCount]int
	for i := 0; i < FieldCount; i++ {
		v, err := strconv.Atoi(record[i])
		if err != nil {
			f, ferr := strconv.ParseFloat(record[i], 64)
			if ferr != nil || f != float64(int(f)) {
				return Summary{}, fmt.Errorf("field %s: %q is not an integer", Header[i], record[i])
			}
			v = int(f)
		}
		if v < 0 {
			return Summary{}, fmt.Errorf("field %s: %d is negative", Header[i], v)
		}
		values[i] = v
	}

	summary := Summary{
		Nodes:        values[0],
		Edges:        values[1],
		MaxDegree:    values[2],
		MaxInDegree:  values[3],
		MaxOutDegree: values[4],
		MaxWeight:    values[5],
	}

	if len(record) == FieldCount+1 {
		switch Label(record[FieldCount]) {
		case Attack, Normal:
			summary.Label = Label(record[FieldCount])
		default:
			return Summary{}, fmt.Errorf("unknown label %q", record[FieldCount])
		}
	}
	return summary, nil
}
