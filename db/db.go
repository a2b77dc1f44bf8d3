package db

import (
	"errors"

	"github.com/datastax/cassandra-schema-builder/schemabuilder"
	"github.com/gocql/gocql"
	"go.uber.org/atomic"
)

// ErrClosing is returned when a statement is handed to a Db whose Close was
// already requested.
var ErrClosing = errors.New("db is closing")

// Db represents a connection to a db
type Db struct {
	session Session
	closing atomic.Bool
}

// NewDb Gets a pointer to a db
func NewDb(hosts ...string) (*Db, error) {
	cluster := gocql.NewCluster(hosts...)

	var (
		session *gocql.Session
		err     error
	)

	session, err = cluster.CreateSession()
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, errors.New("failed to create session")
	}

	return NewDbWithSession(&GoCqlSession{ref: session}), nil
}

// NewDbWithSession Gets a pointer to a db backed by the given session
func NewDbWithSession(session Session) *Db {
	return &Db{
		session: session,
	}
}

// ExecuteStatement builds the statement and executes the resulting CQL. The
// built text is returned so that callers can log what ran. Builder errors are
// returned before anything is sent to the cluster.
func (db *Db) ExecuteStatement(statement schemabuilder.SchemaStatement, options *QueryOptions) (string, error) {
	query, err := statement.Build()
	if err != nil {
		return "", err
	}
	if db.closing.Load() {
		return "", ErrClosing
	}
	if err := db.session.Execute(query, options); err != nil {
		return "", err
	}
	return query, nil
}

// Keyspace Retrieves a keyspace
func (db *Db) Keyspace(keyspace string) (*gocql.KeyspaceMetadata, error) {
	// We expose gocql types for now, we should wrap them in the future instead
	return db.session.KeyspaceMetadata(keyspace)
}

// Keyspaces Retrieves all the keyspace names
func (db *Db) Keyspaces() ([]string, error) {
	result, err := db.session.ExecuteIter(
		"SELECT keyspace_name FROM system_schema.keyspaces", NewQueryOptions())
	if err != nil {
		return nil, err
	}

	var keyspaces []string
	for _, row := range result.Values() {
		if name, ok := row["keyspace_name"].(string); ok {
			keyspaces = append(keyspaces, name)
		}
	}
	return keyspaces, nil
}

// Session exposes the underlying session for read-only consumers.
func (db *Db) Session() Session {
	return db.session
}

// IsClosing reports whether Close was requested.
func (db *Db) IsClosing() bool {
	return db.closing.Load()
}

// Close marks the db as closing and closes the underlying session. Further
// ExecuteStatement calls fail with ErrClosing.
func (db *Db) Close() {
	if db.closing.CAS(false, true) {
		db.session.Close()
	}
}
