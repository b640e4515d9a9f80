package features

import (
	"github.com/QiguangJiang/StatGraph/pkg/graph"
)

type (
	// FieldStats describes one summary field over the windows of one label
	FieldStats struct {
		Field string  `json:"field"`
		Min   int     `json:"min"`
		Max   int     `json:"max"`
		Mean  float64 `json:"mean"`
	}

	// LabelStats groups the field statistics of the windows sharing a label
	LabelStats struct {
		Label   graph.Label  `json:"label"`
		Windows int          `json:"windows"`
		Fields  []FieldStats `json:"fields"`
	}
)

// labelOrder fixes the order groups are reported in
var labelOrder = []graph.Label{graph.NoLabel, graph.Normal, graph.Attack}

// Describe computes per label statistics of every summary field. Labels
// without windows are omitted.
func Describe(rows []graph.Summary) []LabelStats {
	groups := make(map[graph.Label][]graph.Summary)
	for _, row := range rows {
		groups[row.Label] = append(groups[row.Label], row)
	}

	var stats []LabelStats
	for _, label := range labelOrder {
		group, ok := groups[label]
		if !ok {
			continue
		}
		stats = append(stats, describeGroup(label, group))
	}
	return stats
}

func describeGroup(label graph.Label, rows []graph.Summary) LabelStats {
	var sums [graph.FieldCount]int
	var mins, maxs [graph.FieldCount]int

	for i, row := range rows {
		for f, v := range row.Values() {
			sums[f] += v
			if i == 0 || v < mins[f] {
				mins[f] = v
			}
			if v > maxs[f] {
				maxs[f] = v
			}
		}
	}

	fields := make([]FieldStats, graph.FieldCount)
	for f := range fields {
		fields[f] = FieldStats{
			Field: graph.Header[f],
			Min:   mins[f],
			Max:   maxs[f],
			Mean:  float64(sums[f]) / float64(len(rows)),
		}
	}

	return LabelStats{
		Label:   label,
		Windows: len(rows),
		Fields:  fields,
	}
}

// CountLabels returns the number of attack and normal windows
func CountLabels(rows []graph.Summary) (attack int, normal int) {
	for _, row := range rows {
		switch row.Label {
		case graph.Attack:
			attack++
		case graph.Normal:
			normal++
		}
	}
	return attack, normal
}
