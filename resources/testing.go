package resources

import (
	"os"
	"testing"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/QiguangJiang/StatGraph/database"
	"github.com/QiguangJiang/StatGraph/pkg/metrics"
)

//InitTestingResources creates a resource bundle without a database
//for use with unit tests. outputDir replaces the configured output directory.
func InitTestingResources(t *testing.T, outputDir string) *Resources {
	conf, err := config.LoadTestingConfig("")
	if err != nil {
		t.Fatal(err)
	}
	conf.S.Extraction.OutputDirectory = outputDir

	return &Resources{
		Config:  conf,
		Log:     initLogger(&conf.S.Log),
		Metrics: metrics.NewRegistry(),
	}
}

//InitIntegrationTestingResources creates a default testing
//resource bundle for use with integration testing.
//The MongoDB server is contacted via the URI provided
//as by go test -args [MongoDB URI].
func InitIntegrationTestingResources(t *testing.T) *Resources {
	if testing.Short() {
		t.Skip()
	}

	if len(os.Args) != 2 {
		t.Skip("-args [MongoDB URI] is required to run statgraph integration tests with go test")
	}

	mongoURI := os.Args[1]

	conf, err := config.LoadTestingConfig(mongoURI)
	if err != nil {
		t.Fatal(err)
	}

	// Fire up the logging system
	log := initLogger(&conf.S.Log)

	// Allows code to interact with the database
	db, err := database.NewDB(conf, log)
	if err != nil {
		t.Fatal(err)
	}

	//Begin logging to the metadatabase
	if conf.S.Log.LogToDB {
		err = addMongoLogger(log, db.Session, conf.S.MongoDB.MetaDB, conf.T.Log.StatgraphLogTable)
		if err != nil {
			t.Fatal(err)
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
