package parser

import (
	"compress/gzip"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir string, name string, contents string) string {
	path := filepath.Join(dir, name)
	require.Nil(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func newTestExtractor(t *testing.T, windowSize int) (*FSExtractor, string) {
	outDir := filepath.Join(t.TempDir(), "ROAD dealed")
	res := resources.InitTestingResources(t, outDir)
	res.Config.S.Extraction.WindowSize = windowSize
	return NewFSExtractor(res), outDir
}

func TestExtractLabeledVariant(t *testing.T) {
	inputDir := t.TempDir()
	attack1 := writeInput(t, inputDir, "attack_1.csv", roadTable(
		[]string{"A", "A", "B", "A", "B", "C", "C"},
		[]string{"0", "0", "1", "0", "0", "0", "0"},
	))
	attack2 := writeInput(t, inputDir, "attack_2.csv", roadTable(
		[]string{"C", "D", "C", "D", "C", "D"},
		[]string{"0", "0", "0", "0", "0", "0"},
	))

	fs, outDir := newTestExtractor(t, 5)
	results, err := fs.Run([]config.VariantStaticCfg{
		{Name: "1", Files: []string{attack1, attack2}, IDColumn: 0, Labeled: true},
	})
	require.Nil(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "1", result.Name)
	assert.Equal(t, filepath.Join(outDir, "graph_list1.csv"), result.Table)
	assert.Equal(t, 2, result.Windows)
	assert.Equal(t, 1, result.AttackWindows)
	// two from the first file, one from the second
	assert.Equal(t, 3, result.DroppedRecords)
	require.Len(t, result.Files, 2)
	assert.NotEmpty(t, result.Files[0].Hash)

	contents, err := ioutil.ReadFile(result.Table)
	require.Nil(t, err)
	assert.Equal(t, "2,3,4,2,2,2,T\r\n2,2,2,1,1,2,R\r\n", string(contents))
}

func TestExtractUnlabeledVariant(t *testing.T) {
	inputDir := t.TempDir()
	normal := writeInput(t, inputDir, "normal_16_id.csv",
		"Timestamp,ID,DLC\n"+
			"1478198376.389427,0316,8,,\n"+
			"1478198376.389636,018f,8\n"+
			"1478198376.389864,0316,8\n")

	fs, outDir := newTestExtractor(t, 3)
	_, err := fs.Run([]config.VariantStaticCfg{
		{Name: "0", Files: []string{normal}, IDColumn: 1},
	})
	require.Nil(t, err)

	contents, err := ioutil.ReadFile(filepath.Join(outDir, "graph_list0.csv"))
	require.Nil(t, err)
	assert.Equal(t, "2,2,2,1,1,1\r\n", string(contents))
}

func TestExtractIsIdempotent(t *testing.T) {
	inputDir := t.TempDir()
	ids := make([]string, 1000)
	flags := make([]string, 1000)
	for i := range ids {
		ids[i] = string(rune('A' + (i*7)%13))
		flags[i] = "0"
		if i%97 == 0 {
			flags[i] = "1"
		}
	}
	input := writeInput(t, inputDir, "attack_1.csv", roadTable(ids, flags))
	variants := []config.VariantStaticCfg{{Name: "3", Files: []string{input}, Labeled: true}}

	fs, outDir := newTestExtractor(t, 200)
	table := filepath.Join(outDir, "graph_list3.csv")

	_, err := fs.Run(variants)
	require.Nil(t, err)
	first, err := ioutil.ReadFile(table)
	require.Nil(t, err)

	_, err = fs.Run(variants)
	require.Nil(t, err)
	second, err := ioutil.ReadFile(table)
	require.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 5, strings.Count(string(second), "\r\n"))
}

func TestExtractGzipInput(t *testing.T) {
	inputDir := t.TempDir()
	path := filepath.Join(inputDir, "attack_1.csv.gz")
	file, err := os.Create(path)
	require.Nil(t, err)
	zw := gzip.NewWriter(file)
	_, err = zw.Write([]byte(roadTable(
		[]string{"A", "A", "B", "A", "B"},
		[]string{"0", "0", "0", "0", "0"},
	)))
	require.Nil(t, err)
	require.Nil(t, zw.Close())
	require.Nil(t, file.Close())

	fs, outDir := newTestExtractor(t, 5)
	_, err = fs.Run([]config.VariantStaticCfg{{Name: "2", Files: []string{inputDir}, Labeled: true}})
	require.Nil(t, err)

	contents, err := ioutil.ReadFile(filepath.Join(outDir, "graph_list2.csv"))
	require.Nil(t, err)
	assert.Equal(t, "2,3,4,2,2,2,R\r\n", string(contents))
}

func TestExtractCapacityExceeded(t *testing.T) {
	input := writeInput(t, t.TempDir(), "attack_1.csv", roadTable(
		[]string{"A", "B", "C", "A", "B"},
		[]string{"0", "0", "0", "0", "0"},
	))

	fs, outDir := newTestExtractor(t, 5)
	fs.config.S.Extraction.NodeCapacity = 2

	_, err := fs.Run([]config.VariantStaticCfg{{Name: "4", Files: []string{input}, Labeled: true}})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, graph.ErrCapacityExceeded))
	assert.Contains(t, err.Error(), "window 0")

	// nothing is written for a variant which failed to summarize
	_, statErr := os.Stat(filepath.Join(outDir, "graph_list4.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractMalformedRowKeepsPreviousTable(t *testing.T) {
	input := writeInput(t, t.TempDir(), "attack_1.csv", "ID,Flag\n0C1,0\n0C2\n")

	fs, outDir := newTestExtractor(t, 5)
	require.Nil(t, os.MkdirAll(outDir, 0755))
	table := writeInput(t, outDir, "graph_list5.csv", "2,3,4,2,2,2,T\r\n")

	_, err := fs.Run([]config.VariantStaticCfg{{Name: "5", Files: []string{input}, Labeled: true}})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRow))
	assert.Contains(t, err.Error(), "row 3")

	contents, err := ioutil.ReadFile(table)
	require.Nil(t, err)
	assert.Equal(t, "2,3,4,2,2,2,T\r\n", string(contents))
}

func TestExtractMissingInput(t *testing.T) {
	fs, _ := newTestExtractor(t, 5)
	_, err := fs.Run([]config.VariantStaticCfg{
		{Name: "1", Files: []string{filepath.Join(t.TempDir(), "missing.csv")}, Labeled: true},
	})
	assert.NotNil(t, err)
}

func TestExtractWritesMetrics(t *testing.T) {
	input := writeInput(t, t.TempDir(), "attack_1.csv", roadTable(
		[]string{"A", "A", "B", "A", "B", "A"},
		[]string{"0", "1", "0", "0", "0", "0"},
	))

	fs, _ := newTestExtractor(t, 5)
	metricsPath := filepath.Join(t.TempDir(), "statgraph.prom")
	fs.config.S.Metrics.TextfilePath = metricsPath

	_, err := fs.Run([]config.VariantStaticCfg{{Name: "1", Files: []string{input}, Labeled: true}})
	require.Nil(t, err)

	contents, err := ioutil.ReadFile(metricsPath)
	require.Nil(t, err)
	assert.Contains(t, string(contents), `statgraph_windows_total{variant="1"} 1`)
	assert.Contains(t, string(contents), `statgraph_attack_windows_total{variant="1"} 1`)
	assert.Contains(t, string(contents), `statgraph_dropped_records_total{variant="1"} 1`)
}
