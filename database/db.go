package database

import (
	"fmt"

	"github.com/QiguangJiang/StatGraph/config"
	"github.com/activecm/mgosec"
	"github.com/blang/semver"
	"github.com/globalsign/mgo"
	log "github.com/sirupsen/logrus"
)

//MinMongoDBVersion is the lower, inclusive bound on the
//versions of MongoDB compatible with statgraph
var MinMongoDBVersion = semver.Version{
	Major: 4,
	Minor: 2,
	Patch: 0,
}

//MaxMongoDBVersion is the upper, exclusive bound on the
//versions of MongoDB compatible with statgraph
var MaxMongoDBVersion = semver.Version{
	Major: 5,
	Minor: 0,
	Patch: 0,
}

// DB is the workhorse container for messing with the database
type DB struct {
	Session  *mgo.Session
	log      *log.Logger
	selected string
}

//NewDB constructs a new DB struct with the configured feature database selected
func NewDB(conf *config.Config, log *log.Logger) (*DB, error) {
	session, err := connectToMongoDB(conf, log)
	if err != nil {
		return nil, err
	}
	session.SetSocketTimeout(conf.S.MongoDB.SocketTimeout)
	session.SetSyncTimeout(conf.S.MongoDB.SocketTimeout)
	session.SetCursorTimeout(0)

	return &DB{
		Session:  session,
		log:      log,
		selected: conf.S.MongoDB.Database,
	}, nil
}

//connectToMongoDB connects to MongoDB possibly with authentication and TLS
func connectToMongoDB(conf *config.Config, logger *log.Logger) (*mgo.Session, error) {
	connString := conf.S.MongoDB.ConnectionString
	authMechanism := conf.R.MongoDB.AuthMechanismParsed
	tlsConfig := conf.R.MongoDB.TLS.TLSConfig

	var sess *mgo.Session
	var err error
	if conf.S.MongoDB.TLS.Enabled {
		sess, err = mgosec.Dial(connString, authMechanism, tlsConfig)
	} else {
		sess, err = mgosec.DialInsecure(connString, authMechanism)
	}
	if err != nil {
		return sess, err
	}

	buildInfo, err := sess.BuildInfo()
	if err != nil {
		sess.Close()
		return nil, err
	}

	if err := checkServerVersion(buildInfo.Version); err != nil {
		sess.Close()
		return nil, err
	}

	logger.WithFields(log.Fields{
		"server_version": buildInfo.Version,
		"database":       conf.S.MongoDB.Database,
	}).Debug("Connected to MongoDB")
	return sess, nil
}

//checkServerVersion ensures the MongoDB server version falls within
//[MinMongoDBVersion, MaxMongoDBVersion)
func checkServerVersion(version string) error {
	semVersion, err := semver.ParseTolerant(version)
	if err != nil {
		return err
	}

	if !(semVersion.GE(MinMongoDBVersion) && semVersion.LT(MaxMongoDBVersion)) {
		return fmt.Errorf(
			"unsupported version of MongoDB. %s not within [%s, %s)",
			semVersion.String(),
			MinMongoDBVersion.String(),
			MaxMongoDBVersion.String(),
		)
	}
	return nil
}

//SelectDB selects the database holding the feature collections
func (d *DB) SelectDB(db string) {
	d.selected = db
}

//GetSelectedDB retrieves the currently selected database
func (d *DB) GetSelectedDB() string {
	return d.selected
}

//CollectionExists returns true if collection exists in the currently
//selected database
func (d *DB) CollectionExists(table string) bool {
	ssn := d.Session.Copy()
	defer ssn.Close()
	coll, err := ssn.DB(d.selected).CollectionNames()
	if err != nil {
		d.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Failed collection name lookup")
		return false
	}
	for _, name := range coll {
		if name == table {
			return true
		}
	}
	return false
}

//CreateCollection creates a new collection in the currently selected
//database with the required indexes
func (d *DB) CreateCollection(name string, indexes []mgo.Index) error {
	// Make a copy of the current session
	session := d.Session.Copy()
	defer session.Close()

	d.log.Debug("Building collection: ", name)

	err := session.DB(d.selected).C(name).Create(
		&mgo.CollectionInfo{},
	)

	// Make sure it actually got created
	if err != nil {
		return err
	}

	collection := session.DB(d.selected).C(name)
	for _, index := range indexes {
		err := collection.EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

//DropCollection removes a collection from the currently selected database.
//Dropping a collection which does not exist is not an error.
func (d *DB) DropCollection(name string) error {
	session := d.Session.Copy()
	defer session.Close()

	if !d.CollectionExists(name) {
		return nil
	}

	d.log.WithFields(log.Fields{
		"collection": name,
		"database":   d.selected,
	}).Debug("Dropping collection")
	return session.DB(d.selected).C(name).DropCollection()
}

//CountDocuments returns the number of documents in a collection
func (d *DB) CountDocuments(name string) (int, error) {
	session := d.Session.Copy()
	defer session.Close()
	return session.DB(d.selected).C(name).Count()
}
