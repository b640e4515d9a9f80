package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeWorkedExample(t *testing.T) {
	g, err := Build([]string{"A", "A", "B", "A", "B"}, DefaultCapacity)
	require.Nil(t, err)

	s := Summarize(g, Attack)
	assert.Equal(t, Summary{
		Nodes:        2,
		Edges:        3,
		MaxDegree:    4,
		MaxInDegree:  2,
		MaxOutDegree: 2,
		MaxWeight:    2,
		Label:        Attack,
	}, s)
}

func TestSummarizeStar(t *testing.T) {
	// hub H sends to every leaf and every leaf answers the hub
	g, err := Build([]string{"H", "1", "H", "2", "H", "3", "H"}, DefaultCapacity)
	require.Nil(t, err)

	s := Summarize(g, NoLabel)
	assert.Equal(t, 4, s.Nodes)
	assert.Equal(t, 6, s.Edges)
	assert.Equal(t, 6, s.MaxDegree)
	assert.Equal(t, 3, s.MaxInDegree)
	assert.Equal(t, 3, s.MaxOutDegree)
	assert.Equal(t, 1, s.MaxWeight)
}

func TestSummarizeEmptyGraph(t *testing.T) {
	g, err := Build(nil, DefaultCapacity)
	require.Nil(t, err)
	assert.Equal(t, Summary{}, Summarize(g, NoLabel))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, Attack, LabelFor(true))
	assert.Equal(t, Normal, LabelFor(false))
}

func TestRecord(t *testing.T) {
	s := Summary{Nodes: 2, Edges: 3, MaxDegree: 4, MaxInDegree: 2, MaxOutDegree: 2, MaxWeight: 2}
	assert.Equal(t, []string{"2", "3", "4", "2", "2", "2"}, s.Record())

	s.Label = Normal
	assert.Equal(t, []string{"2", "3", "4", "2", "2", "2", "R"}, s.Record())
}

func TestParseRecord(t *testing.T) {
	s, err := ParseRecord([]string{"2", "3", "4", "2", "2", "2", "T"})
	require.Nil(t, err)
	assert.Equal(t, Summary{Nodes: 2, Edges: 3, MaxDegree: 4, MaxInDegree: 2, MaxOutDegree: 2, MaxWeight: 2, Label: Attack}, s)

	// tables written with float formatting
	s, err = ParseRecord([]string{"37", "52.0", "9.0", "5.0", "5.0", "21.0"})
	require.Nil(t, err)
	assert.Equal(t, 52, s.Edges)
	assert.Equal(t, NoLabel, s.Label)

	_, err = ParseRecord([]string{"2", "3", "4"})
	assert.NotNil(t, err)

	_, err = ParseRecord([]string{"2", "3", "4", "2", "2", "x"})
	assert.NotNil(t, err)

	_, err = ParseRecord([]string{"2", "3", "4", "2", "2", "2.5"})
	assert.NotNil(t, err)

	_, err = ParseRecord([]string{"2", "3", "4", "2", "2", "-1"})
	assert.NotNil(t, err)

	_, err = ParseRecord([]string{"2", "3", "4", "2", "2", "2", "X"})
	assert.NotNil(t, err)
}
