package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"reflect"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Version is filled at compile time with the git version of statgraph
var Version = "undefined"

// ExactVersion is filled at compile time with the git version of statgraph
var ExactVersion = "undefined"

const (
	userConfigPath   = ".statgraph/config.yaml"
	systemConfigPath = "/etc/statgraph/config.yaml"
)

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
		T TableCfg
	}
)

// LoadConfig loads the user's configuration. An explicitly named file wins,
// then ~/.statgraph/config.yaml, then /etc/statgraph/config.yaml.
func LoadConfig(cfgPath string) (*Config, error) {
	// variables from a local .env file take part in $VAR expansion
	_ = godotenv.Load()

	if cfgPath == "" {
		cfgPath = findConfigFile()
	}

	config := &Config{}

	if err := defaults.Set(&config.T); err != nil {
		return nil, err
	}

	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	if err := loadStaticConfig(cfgPath, &config.S); err != nil {
		return nil, err
	}

	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}

// findConfigFile returns the first config file present in order of precedence
func findConfigFile() string {
	usr, err := user.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not get user info: %s\n", err.Error())
	} else {
		userPath := filepath.Join(usr.HomeDir, userConfigPath)
		if _, err := os.Stat(userPath); err == nil {
			return userPath
		}
	}
	return systemConfigPath
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.Struct {
			for j := 0; j < f.Len(); j++ {
				expandConfig(f.Index(j))
			}
		}
	}
}
