package config

import (
	"github.com/creasty/defaults"
)

const testConfig = `
MongoDB:
    Enabled: false
    ConnectionString: null
    AuthenticationMechanism: null
    SocketTimeout: 2
    TLS:
        Enable: false
        VerifyCertificate: false
        CAFile: null
    Database: STATGRAPH-TEST
    MetaDB: STATGRAPH-TEST-MetaDatabase
LogConfig:
    LogLevel: 3
    StatgraphLogPath: null
    LogToFile: false
    LogToDB: false
Extraction:
    WindowSize: 200
    NodeCapacity: 200
    OutputDirectory: ./ROAD dealed
    ShowProgress: false
Variants:
    - Name: "0"
      Files: ["normal_16_id.csv"]
      IDColumn: 1
      Labeled: false
    - Name: "5"
      Files: ["Deal_max_engine_coolant_temp_attack_masquerade.csv"]
      IDColumn: 0
      Labeled: true
`

// LoadTestingConfig loads the hard coded testing config. If mongoURI is
// not empty, the MongoDB feature mirror is enabled and pointed at it.
func LoadTestingConfig(mongoURI string) (*Config, error) {
	config := &Config{}

	// Initialize table config to the default values
	if err := defaults.Set(&config.T); err != nil {
		return nil, err
	}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig([]byte(testConfig), &config.S); err != nil {
		return nil, err
	}

	if mongoURI != "" {
		config.S.MongoDB.Enabled = true
		config.S.MongoDB.ConnectionString = mongoURI
	}

	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}
