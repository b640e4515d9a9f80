package resources

import (
	"fmt"
	"os"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/database"
	"github.com/QiguangJiang/StatGraph/pkg/metrics"
	log "github.com/sirupsen/logrus"
)

type (
	// Resources provides a data structure for passing system Resources
	Resources struct {
		Config  *config.Config
		Log     *log.Logger
		DB      *database.DB // nil unless MongoDB is enabled
		Metrics *metrics.Registry
	}
)

// InitResources grabs the configuration file and intitializes the configuration data
// returning a *Resources object which has all of the necessary configuration information
func InitResources(userConfig string) *Resources {
	conf, err := config.LoadConfig(userConfig)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Failed to config: %s\n", err.Error())
		os.Exit(-1)
	}

	// Fire up the logging system
	log := initLogger(&conf.S.Log)

	if conf.S.Log.LogToFile {
		err = addFileLogger(log, conf.S.Log.StatgraphLogPath)
		if err != nil {
			fmt.Printf("Failed to set up file logging: %s\n", err.Error())
			os.Exit(-1)
		}
	}

	// The feature mirror is optional
	var db *database.DB
	if conf.S.MongoDB.Enabled {
		db, err = database.NewDB(conf, log)
		if err != nil {
			fmt.Printf("Failed to connect to database: %s\n", err.Error())
			os.Exit(-1)
		}

		//Begin logging to the metadatabase
		if conf.S.Log.LogToDB {
			err = addMongoLogger(log, db.Session, conf.S.MongoDB.MetaDB, conf.T.Log.StatgraphLogTable)
			if err != nil {
				fmt.Printf("Failed to set up database logging: %s\n", err.Error())
				os.Exit(-1)
			}
		}
	}

	//bundle up the system resources
	r := &Resources{
		Config:  conf,
		Log:     log,
		DB:      db,
		Metrics: metrics.NewRegistry(),
	}
	return r
}

// Close releases the database session if one was opened
func (r *Resources) Close() {
	if r.DB != nil {
		r.DB.Session.Close()
	}
}
