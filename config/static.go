package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/QiguangJiang/StatGraph/util"
	yaml "gopkg.in/yaml.v2"
)

// defaultSocketTimeout is the MongoDB socket timeout in hours
const defaultSocketTimeout = 2

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		MongoDB      MongoDBStaticCfg    `yaml:"MongoDB"`
		Log          LogStaticCfg        `yaml:"LogConfig"`
		Extraction   ExtractionStaticCfg `yaml:"Extraction"`
		Metrics      MetricsStaticCfg    `yaml:"Metrics"`
		Variants     []VariantStaticCfg  `yaml:"Variants" validate:"dive"`
		Version      string              `yaml:"-"`
		ExactVersion string              `yaml:"-"`
	}

	//MongoDBStaticCfg contains the means for connecting to MongoDB
	MongoDBStaticCfg struct {
		Enabled          bool          `yaml:"Enabled"`
		ConnectionString string        `yaml:"ConnectionString" default:"mongodb://localhost:27017" validate:"required_if=Enabled true"`
		AuthMechanism    string        `yaml:"AuthenticationMechanism"`
		SocketTimeout    time.Duration `yaml:"SocketTimeout"`
		TLS              TLSStaticCfg  `yaml:"TLS"`
		Database         string        `yaml:"Database" default:"statgraph" validate:"required_if=Enabled true"`
		MetaDB           string        `yaml:"MetaDB" default:"statgraph-meta"`
	}

	//TLSStaticCfg contains the means for connecting to MongoDB over TLS
	TLSStaticCfg struct {
		Enabled           bool   `yaml:"Enable"`
		VerifyCertificate bool   `yaml:"VerifyCertificate"`
		CAFile            string `yaml:"CAFile"`
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel         int    `yaml:"LogLevel" default:"2" validate:"min=0,max=3"`
		StatgraphLogPath string `yaml:"StatgraphLogPath" default:"/var/lib/statgraph/logs"`
		LogToFile        bool   `yaml:"LogToFile" default:"true"`
		LogToDB          bool   `yaml:"LogToDB"`
	}

	//ExtractionStaticCfg controls the windowing and graph building
	ExtractionStaticCfg struct {
		WindowSize      int    `yaml:"WindowSize" default:"200" validate:"min=2"`
		NodeCapacity    int    `yaml:"NodeCapacity" default:"200" validate:"min=1"`
		OutputDirectory string `yaml:"OutputDirectory" default:"./ROAD dealed" validate:"required"`
		ShowProgress    bool   `yaml:"ShowProgress" default:"true"`
	}

	//MetricsStaticCfg controls the prometheus textfile export
	MetricsStaticCfg struct {
		TextfilePath string `yaml:"TextfilePath"`
	}

	//VariantStaticCfg describes one source dataset variant. Each variant
	//produces exactly one feature table.
	VariantStaticCfg struct {
		Name     string   `yaml:"Name" validate:"required,excludesall=/"`
		Files    []string `yaml:"Files" validate:"required,min=1,dive,required"`
		IDColumn int      `yaml:"IDColumn" validate:"min=0"`
		Labeled  bool     `yaml:"Labeled"`
	}
)

// loadStaticConfig attempts to parse a config file
func loadStaticConfig(cfgPath string, config *StaticCfg) error {
	_, err := os.Stat(cfgPath)

	if os.IsNotExist(err) {
		return err
	}

	cfgFile, err := ioutil.ReadFile(cfgPath)
	if err != nil {
		return err
	}

	err = parseStaticConfig(cfgFile, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %s\n", err.Error())
		return err
	}
	return nil
}

// parseStaticConfig deserializes the yaml contents into the static config,
// expands environment variables, cleans paths and validates the result
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	err := yaml.Unmarshal(cfgFile, config)
	if err != nil {
		return err
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	// set the socket time out in hours
	if config.MongoDB.SocketTimeout == 0 {
		config.MongoDB.SocketTimeout = defaultSocketTimeout
	}
	config.MongoDB.SocketTimeout *= time.Hour

	// clean all filepaths
	config.Log.StatgraphLogPath = filepath.Clean(config.Log.StatgraphLogPath)
	config.Extraction.OutputDirectory = filepath.Clean(config.Extraction.OutputDirectory)
	for i := range config.Variants {
		for j, file := range config.Variants[i].Files {
			config.Variants[i].Files[j] = filepath.Clean(file)
		}
	}

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return validateStaticConfig(config)
}

// GetVariant returns the variant with the given name
func (s *StaticCfg) GetVariant(name string) (VariantStaticCfg, bool) {
	for _, variant := range s.Variants {
		if variant.Name == name {
			return variant, true
		}
	}
	return VariantStaticCfg{}, false
}

// SelectVariants returns the named variants in config order, or all of them
// when no names are given
func (s *StaticCfg) SelectVariants(names []string) ([]VariantStaticCfg, error) {
	if len(names) == 0 {
		return s.Variants, nil
	}

	for _, name := range names {
		if _, ok := s.GetVariant(name); !ok {
			return nil, fmt.Errorf("variant %q is not configured", name)
		}
	}

	var selected []VariantStaticCfg
	for _, variant := range s.Variants {
		if util.StringInSlice(variant.Name, names) {
			selected = append(selected, variant)
		}
	}
	return selected, nil
}
