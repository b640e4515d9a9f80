package features

import (
	"testing"

	"github.com/QiguangJiang/StatGraph/pkg/graph"
	"github.com/QiguangJiang/StatGraph/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoWriter(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	defer res.Close()

	collection := res.Config.T.Features.TableName("test")
	defer res.DB.DropCollection(collection)

	w := NewMongoWriter(res.DB, res.Log, collection)
	w.batchSize = 2

	rows := append(testRows, graph.Summary{Nodes: 1, Label: graph.Normal})
	writeRows(t, w, rows)

	count, err := res.DB.CountDocuments(collection)
	require.Nil(t, err)
	assert.Equal(t, 3, count)

	// a second run replaces the documents of the first
	writeRows(t, w, rows[:1])
	count, err = res.DB.CountDocuments(collection)
	require.Nil(t, err)
	assert.Equal(t, 1, count)

	ssn := res.DB.Session.Copy()
	defer ssn.Close()
	var doc featureDoc
	require.Nil(t, ssn.DB(res.DB.GetSelectedDB()).C(collection).Find(nil).One(&doc))
	assert.Equal(t, 0, doc.Window)
	assert.Equal(t, testRows[0], doc.Summary)
}
