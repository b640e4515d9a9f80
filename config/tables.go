package config

import "path/filepath"

type (
	//TableCfg is the container for other table config sections
	TableCfg struct {
		Log      LogTableCfg
		Features FeaturesTableCfg
	}

	//LogTableCfg contains the configuration for logging
	LogTableCfg struct {
		StatgraphLogTable string `default:"logs"`
	}

	//FeaturesTableCfg contains the naming of the feature tables
	FeaturesTableCfg struct {
		TablePrefix string `default:"graph_list"`
		Extension   string `default:".csv"`
		UseCRLF     bool   `default:"true"`
	}
)

// TableName returns the name of the feature table (and MongoDB collection)
// written for a variant
func (f FeaturesTableCfg) TableName(variant string) string {
	return f.TablePrefix + variant
}

// TablePath returns the location of the feature table file of a variant
func (f FeaturesTableCfg) TablePath(outputDir string, variant string) string {
	return filepath.Join(outputDir, f.TableName(variant)+f.Extension)
}
