package files

import (
	"time"
)

//IndexedFile describes one input table of a variant
type IndexedFile struct {
	Path    string    `bson:"filepath" json:"filepath"`
	Length  int64     `bson:"length" json:"length"`
	ModTime time.Time `bson:"modified" json:"modified"`
	Hash    string    `bson:"hash" json:"hash"`
}
