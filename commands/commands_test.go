package commands

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, command := range Commands() {
		names = append(names, command.Name)
	}
	for _, name := range []string{
		"extract", "show-features", "show-variants", "delete-features",
		"html-report", "test-config", "version",
	} {
		assert.Contains(t, names, name)
	}
}

func TestConfirmAction(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		" y ":   true,
		"n\n":   false,
		"\n":    false,
		"":      false,
		"maybe": false,
	}
	for input, expected := range cases {
		var out bytes.Buffer
		confirmed, err := confirmAction(strings.NewReader(input), &out, "Delete?")
		require.Nil(t, err)
		assert.Equal(t, expected, confirmed, "input %q", input)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}

var testStats = features.Describe([]graph.Summary{
	{Nodes: 2, Edges: 3, MaxDegree: 4, MaxInDegree: 2, MaxOutDegree: 2, MaxWeight: 2, Label: graph.Attack},
	{Nodes: 4, Edges: 5, MaxDegree: 6, MaxInDegree: 3, MaxOutDegree: 3, MaxWeight: 1, Label: graph.Attack},
})

func TestShowFeatures(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, showFeatures(&out, testStats, ","))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+graph.FieldCount)
	assert.Equal(t, "Label,Windows,Field,Min,Max,Mean", lines[0])
	assert.Equal(t, "T,2,node_count,2,4,3.00", lines[1])
	assert.Equal(t, "T,2,max_weight,1,2,1.50", lines[6])
}

func TestShowFeaturesUnlabeled(t *testing.T) {
	rows := featureStatsRows(features.Describe([]graph.Summary{{Nodes: 1}}))
	require.Len(t, rows, graph.FieldCount)
	assert.Equal(t, "-", rows[0][0])
}

func TestShowFeaturesHuman(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, showFeaturesHuman(&out, testStats))
	assert.Contains(t, out.String(), "MEAN")
	assert.Contains(t, out.String(), "max_weight")
	assert.Contains(t, out.String(), "node_count")
}

func TestShowFeaturesJSON(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, showFeaturesJSON(&out, testStats))
	assert.Contains(t, out.String(), `"label": "T"`)
	assert.Contains(t, out.String(), `"windows": 2`)
	assert.Contains(t, out.String(), `"field": "max_weight"`)
}

func TestGetVariantViews(t *testing.T) {
	conf, err := config.LoadTestingConfig("")
	require.Nil(t, err)

	dir := t.TempDir()
	input := filepath.Join(dir, "attack_1.csv")
	require.Nil(t, ioutil.WriteFile(input, []byte("ID,Flag\n"), 0644))

	conf.S.Extraction.OutputDirectory = filepath.Join(dir, "out")
	conf.S.Variants = []config.VariantStaticCfg{
		{Name: "1", Files: []string{input, filepath.Join(dir, "attack_2.csv")}, Labeled: true},
		{Name: "2", Files: []string{input}, Labeled: true},
	}

	writer := features.NewCSVWriter(conf.T.Features.TablePath(conf.S.Extraction.OutputDirectory, "2"), true)
	require.Nil(t, writer.Reset())
	require.Nil(t, writer.Write(graph.Summary{Nodes: 1, Label: graph.Normal}))
	require.Nil(t, writer.Close())

	views := getVariantViews(conf)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].Inputs)
	assert.Equal(t, 1, views[0].MissingInputs)
	assert.Equal(t, -1, views[0].Rows)
	assert.Equal(t, "-", views[0].row()[6])
	assert.Equal(t, 0, views[1].MissingInputs)
	assert.Equal(t, 1, views[1].Rows)

	var out bytes.Buffer
	showVariants(&out, views, "|")
	assert.Contains(t, out.String(), "Variant|ID Column|Labeled")
	assert.Contains(t, out.String(), "2|0|true|1|0|")
}
