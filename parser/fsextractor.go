package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/database"
	"github.com/QiguangJiang/StatGraph/parser/files"
	"github.com/QiguangJiang/StatGraph/pkg/features"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/QiguangJiang/StatGraph/pkg/metrics"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/QiguangJiang/StatGraph/util"
	"github.com/google/uuid"
	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
)

type (
	//FSExtractor turns the input tables of the configured variants into
	//feature tables
	FSExtractor struct {
		log      *log.Logger
		config   *config.Config
		database *database.DB
		metrics  *metrics.Registry
		runID    string
	}

	//VariantResult reports the outcome of one extracted variant
	VariantResult struct {
		Name           string
		Table          string
		Files          []*files.IndexedFile
		Windows        int
		AttackWindows  int
		DroppedRecords int
		Duration       time.Duration
	}
)

//NewFSExtractor creates a new file system extractor
func NewFSExtractor(res *resources.Resources) *FSExtractor {
	return &FSExtractor{
		log:      res.Log,
		config:   res.Config,
		database: res.DB,
		metrics:  res.Metrics,
		runID:    uuid.New().String(),
	}
}

//RunID identifies the log entries of this extractor
func (fs *FSExtractor) RunID() string {
	return fs.runID
}

//Run extracts the feature table of every variant in order. The first error
//aborts the run; tables of variants finished before it are kept.
func (fs *FSExtractor) Run(variants []config.VariantStaticCfg) ([]VariantResult, error) {
	start := time.Now()
	fs.log.WithFields(log.Fields{
		"run_id":        fs.runID,
		"variants":      len(variants),
		"window_size":   fs.config.S.Extraction.WindowSize,
		"node_capacity": fs.config.S.Extraction.NodeCapacity,
		"total_memory":  memory.TotalMemory(),
	}).Info("Starting feature extraction")

	var results []VariantResult
	for _, variant := range variants {
		fmt.Printf("\t[-] Extracting variant %s ...\n", variant.Name)

		result, err := fs.extractVariant(variant)
		if err != nil {
			fs.log.WithFields(log.Fields{
				"run_id":  fs.runID,
				"variant": variant.Name,
				"error":   err.Error(),
			}).Error("Feature extraction failed")
			fs.writeMetrics()
			return results, fmt.Errorf("variant %s: %w", variant.Name, err)
		}

		fmt.Printf("\t[-] Wrote %d rows to %s in %s\n",
			result.Windows, result.Table, util.FormatDuration(result.Duration))
		if result.DroppedRecords > 0 {
			fmt.Printf("\t[-] Dropped %d trailing records which did not fill a window\n", result.DroppedRecords)
		}

		fs.metrics.RecordVariant(result.Name, result.Windows, result.AttackWindows, result.DroppedRecords, result.Duration)
		results = append(results, result)
	}

	fs.metrics.RecordSuccess(time.Now())
	fs.writeMetrics()

	fs.log.WithFields(log.Fields{
		"run_id":   fs.runID,
		"variants": len(results),
		"duration": time.Since(start).String(),
	}).Info("Finished feature extraction")
	return results, nil
}

//extractVariant reads every input of a variant before its table is replaced
func (fs *FSExtractor) extractVariant(variant config.VariantStaticCfg) (VariantResult, error) {
	start := time.Now()
	result := VariantResult{
		Name:  variant.Name,
		Table: fs.config.T.Features.TablePath(fs.config.S.Extraction.OutputDirectory, variant.Name),
	}

	paths, err := files.GatherInputFiles(variant.Files, fs.log)
	if err != nil {
		return result, err
	}

	layout := Layout{IDColumn: variant.IDColumn, Labeled: variant.Labeled}

	var summaries []graph.Summary
	for _, path := range paths {
		indexed, err := files.IndexFile(path)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, indexed)

		fileSummaries, windower, err := fs.summarizeFile(indexed, layout)
		if err != nil {
			return result, err
		}

		fs.log.WithFields(log.Fields{
			"run_id":  fs.runID,
			"variant": variant.Name,
			"path":    indexed.Path,
			"hash":    indexed.Hash,
			"rows":    windower.Rows(),
			"windows": windower.Windows(),
			"dropped": windower.Dropped(),
		}).Info("Summarized input file")

		summaries = append(summaries, fileSummaries...)
		result.DroppedRecords += windower.Dropped()
	}

	err = fs.writeTable(variant, summaries)
	if err != nil {
		return result, err
	}

	result.Windows = len(summaries)
	result.AttackWindows, _ = features.CountLabels(summaries)
	result.Duration = time.Since(start)
	return result, nil
}

//summarizeFile windows one input table and summarizes every window graph
func (fs *FSExtractor) summarizeFile(file *files.IndexedFile, layout Layout) ([]graph.Summary, *Windower, error) {
	reader, closer, err := files.OpenTable(file.Path)
	if err != nil {
		return nil, nil, err
	}
	defer closer()

	windower := NewWindower(reader, file.Path, fs.config.S.Extraction.WindowSize, layout)

	// compressed inputs report offsets past their length on disk
	total := file.Length
	if strings.HasSuffix(file.Path, ".gz") {
		total = 0
	}
	bar := newProgress(filepath.Base(file.Path), total, fs.config.S.Extraction.ShowProgress)
	defer bar.done()

	var summaries []graph.Summary
	for {
		window, err := windower.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, windower, err
		}

		g, err := graph.Build(window.IDs, fs.config.S.Extraction.NodeCapacity)
		if err != nil {
			return nil, windower, fmt.Errorf("%s window %d: %w", file.Path, window.Index, err)
		}
		summaries = append(summaries, graph.Summarize(g, window.Label))
		bar.update(reader.InputOffset())
	}
	return summaries, windower, nil
}

//writeTable replaces the feature table (and collection) of a variant
func (fs *FSExtractor) writeTable(variant config.VariantStaticCfg, summaries []graph.Summary) error {
	writer := fs.newWriter(variant)

	if err := writer.Reset(); err != nil {
		writer.Close()
		return err
	}

	for _, summary := range summaries {
		if err := writer.Write(summary); err != nil {
			writer.Close()
			return err
		}
	}
	return writer.Close()
}

func (fs *FSExtractor) newWriter(variant config.VariantStaticCfg) features.Writer {
	tables := fs.config.T.Features
	csvWriter := features.NewCSVWriter(
		tables.TablePath(fs.config.S.Extraction.OutputDirectory, variant.Name),
		tables.UseCRLF,
	)
	if fs.database == nil {
		return csvWriter
	}
	return features.MultiWriter(
		csvWriter,
		features.NewMongoWriter(fs.database, fs.log, tables.TableName(variant.Name)),
	)
}

func (fs *FSExtractor) writeMetrics() {
	path := fs.config.S.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := fs.metrics.WriteTextfile(path); err != nil {
		fs.log.WithFields(log.Fields{
			"run_id": fs.runID,
			"path":   path,
			"error":  err.Error(),
		}).Error("Could not write metrics textfile")
		fmt.Printf("\t[!] Could not write metrics to %s: %s\n", path, err.Error())
	}
}
