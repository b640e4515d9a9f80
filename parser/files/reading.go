package files

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/QiguangJiang/StatGraph/util"
	log "github.com/sirupsen/logrus"
)

// GatherInputFiles expands the configured input paths. Directories are
// replaced by the .csv and .csv.gz files they contain in lexical order. A
// path which does not exist is an error; inputs are never skipped silently.
func GatherInputFiles(paths []string, logger *log.Logger) ([]string, error) {
	var toReturn []string

	for _, p := range paths {
		exists, err := util.Exists(p)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("input file %s does not exist", p)
		}

		if util.IsDir(p) {
			dirFiles, err := gatherDir(p, logger)
			if err != nil {
				return nil, err
			}
			toReturn = append(toReturn, dirFiles...)
			continue
		}

		if !isTableFile(p) {
			logger.WithFields(log.Fields{
				"path": p,
			}).Warn("Reading input without a .csv or .csv.gz extension")
		}
		toReturn = append(toReturn, p)
	}

	return toReturn, nil
}

// gatherDir reads the directory looking for .csv and .csv.gz files
func gatherDir(cpath string, logger *log.Logger) ([]string, error) {
	var toReturn []string
	files, err := ioutil.ReadDir(cpath)
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"path":  cpath,
		}).Error("Error when reading directory")
		return nil, err
	}

	for _, file := range files {
		if !file.IsDir() && isTableFile(file.Name()) {
			toReturn = append(toReturn, path.Join(cpath, file.Name()))
		}
	}
	sort.Strings(toReturn)
	return toReturn, nil
}

func isTableFile(name string) bool {
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".csv.gz")
}

// OpenTable returns a csv reader over an input table, a function to close
// the underlying stream, and any error that may occur while opening it.
// Gzip compressed tables (.gz) are decompressed transparently.
func OpenTable(filePath string) (reader *csv.Reader, closer func() error, err error) {
	fileHandle, err := os.Open(filePath)
	if err != nil {
		return nil, func() error { return nil }, err
	}

	// by default just close out the underlying file handle
	closer = fileHandle.Close

	var stream io.Reader = fileHandle
	if strings.HasSuffix(filePath, ".gz") {
		gzipReader, err := gzip.NewReader(fileHandle)
		if err != nil {
			return nil, closer, err
		}
		closer = func() error {
			errGzip := gzipReader.Close()
			errFile := fileHandle.Close()
			if errGzip != nil {
				return errGzip
			}
			return errFile
		}
		stream = gzipReader
	}

	reader = csv.NewReader(stream)
	// rows are variable width and may carry empty trailing fields
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader, closer, nil
}
