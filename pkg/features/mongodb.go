package features

import (
	"fmt"

	"github.com/QiguangJiang/StatGraph/database"
	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/globalsign/mgo"
	log "github.com/sirupsen/logrus"
)

// DefaultBatchSize is the number of documents sent per bulk insert
const DefaultBatchSize = 500

type (
	// featureDoc is the MongoDB representation of one summary row
	featureDoc struct {
		Window        int `bson:"window"`
		graph.Summary `bson:",inline"`
	}

	// MongoWriter mirrors the summary rows of a variant into a collection
	MongoWriter struct {
		db         *database.DB
		log        *log.Logger
		collection string
		batchSize  int
		batch      []interface{}
		windows    int
	}
)

// NewMongoWriter creates a writer for the named collection of the selected
// database
func NewMongoWriter(db *database.DB, logger *log.Logger, collection string) *MongoWriter {
	return &MongoWriter{
		db:         db,
		log:        logger,
		collection: collection,
		batchSize:  DefaultBatchSize,
		batch:      make([]interface{}, 0, DefaultBatchSize),
	}
}

// Reset drops the collection of a previous run and creates it again
func (m *MongoWriter) Reset() error {
	if err := m.db.DropCollection(m.collection); err != nil {
		return fmt.Errorf("could not drop collection %s: %w", m.collection, err)
	}

	indexes := []mgo.Index{
		{Key: []string{"window"}, Unique: true},
		{Key: []string{"label"}},
	}
	if err := m.db.CreateCollection(m.collection, indexes); err != nil {
		return fmt.Errorf("could not create collection %s: %w", m.collection, err)
	}

	m.batch = m.batch[:0]
	m.windows = 0
	return nil
}

// Write queues one document, flushing when the batch is full
func (m *MongoWriter) Write(summary graph.Summary) error {
	m.batch = append(m.batch, featureDoc{Window: m.windows, Summary: summary})
	m.windows++
	if len(m.batch) >= m.batchSize {
		return m.flush()
	}
	return nil
}

// Close sends any queued documents
func (m *MongoWriter) Close() error {
	return m.flush()
}

func (m *MongoWriter) flush() error {
	if len(m.batch) == 0 {
		return nil
	}

	ssn := m.db.Session.Copy()
	defer ssn.Close()

	bulk := ssn.DB(m.db.GetSelectedDB()).C(m.collection).Bulk()
	bulk.Unordered()
	bulk.Insert(m.batch...)
	_, err := bulk.Run()
	if err != nil {
		m.log.WithFields(log.Fields{
			"collection": m.collection,
			"documents":  len(m.batch),
			"error":      err.Error(),
		}).Error("Could not insert feature documents")
		return fmt.Errorf("could not insert into %s: %w", m.collection, err)
	}

	m.batch = m.batch[:0]
	return nil
}
