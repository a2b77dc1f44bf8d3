package db

import (
	"errors"
	"testing"

	"github.com/datastax/cassandra-schema-builder/schemabuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExecuteStatement(t *testing.T) {
	sessionMock := NewSessionMock()
	testDb := NewDbWithSession(sessionMock)

	statement := schemabuilder.CreateTableInKeyspace("store", "books").
		AddPartitionKey("title", schemabuilder.TypeText).
		AddColumn("pages", schemabuilder.TypeInt)

	query, err := testDb.ExecuteStatement(statement, NewQueryOptions())

	assert.Nil(t, err)
	assert.Equal(t, "CREATE TABLE store.books (title text, pages int, PRIMARY KEY (title))", query)
	sessionMock.AssertCalled(t, "Execute", query, mock.Anything, mock.Anything)
}

func TestExecuteStatementBuilderErrorSkipsSession(t *testing.T) {
	sessionMock := &SessionMock{}
	testDb := NewDbWithSession(sessionMock)

	statement := schemabuilder.CreateTable("add").
		AddPartitionKey("id", schemabuilder.TypeUUID)

	query, err := testDb.ExecuteStatement(statement, NewQueryOptions())

	assert.Empty(t, query)
	assert.IsType(t, &schemabuilder.ConfigurationError{}, err)
	sessionMock.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteStatementSessionError(t *testing.T) {
	sessionMock := &SessionMock{}
	sessionMock.
		On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("no hosts available"))
	testDb := NewDbWithSession(sessionMock)

	statement := schemabuilder.DropTable("books")
	query, err := testDb.ExecuteStatement(statement, NewQueryOptions())

	assert.Empty(t, query)
	assert.EqualError(t, err, "no hosts available")
}

func TestKeyspaces(t *testing.T) {
	testDb := NewDbWithSession(NewSessionMock())

	keyspaces, err := testDb.Keyspaces()

	assert.Nil(t, err)
	assert.Equal(t, []string{"system", "store"}, keyspaces)
}

func TestCreateKeyspaceRendersSortedReplicas(t *testing.T) {
	sessionMock := NewSessionMock()
	testDb := NewDbWithSession(sessionMock)

	err := testDb.CreateKeyspace("store", map[string]int{"dc2": 2, "dc1": 3}, NewQueryOptions())

	assert.Nil(t, err)
	sessionMock.AssertCalled(t, "Execute",
		"CREATE KEYSPACE store WITH REPLICATION = { 'class': 'NetworkTopologyStrategy', 'dc1': 3, 'dc2': 2 }",
		mock.Anything, mock.Anything)
}

func TestDropKeyspace(t *testing.T) {
	sessionMock := NewSessionMock()
	testDb := NewDbWithSession(sessionMock)

	err := testDb.DropKeyspace("store", NewQueryOptions())

	assert.Nil(t, err)
	sessionMock.AssertCalled(t, "Execute", "DROP KEYSPACE store", mock.Anything, mock.Anything)
}

func TestCloseRejectsFurtherStatements(t *testing.T) {
	sessionMock := NewSessionMock()
	testDb := NewDbWithSession(sessionMock)

	assert.False(t, testDb.IsClosing())
	testDb.Close()
	testDb.Close()

	assert.True(t, testDb.IsClosing())
	sessionMock.AssertNumberOfCalls(t, "Close", 1)

	_, err := testDb.ExecuteStatement(schemabuilder.DropTable("books"), NewQueryOptions())
	assert.Equal(t, ErrClosing, err)
}

func TestLocalNode(t *testing.T) {
	testDb := NewDbWithSession(NewSessionMock())

	row, err := testDb.LocalNode()

	assert.Nil(t, err)
	assert.Equal(t, "dc1", row["data_center"])
	assert.Equal(t, "3.11.6", row["release_version"])
}

func TestPeerNodes(t *testing.T) {
	testDb := NewDbWithSession(NewSessionMock())

	rows, err := testDb.PeerNodes()

	assert.Nil(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "10.0.0.2", rows[0]["peer"])
	}
}
