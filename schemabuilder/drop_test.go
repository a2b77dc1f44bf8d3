package schemabuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropGeneration(t *testing.T) {
	items := []struct {
		name      string
		statement *Drop
		query     string
	}{
		{"table", DropTable("test"), "DROP TABLE test"},
		{"table with keyspace", DropTableInKeyspace("ks", "test"), "DROP TABLE ks.test"},
		{"table with keyspace if exists", DropTableInKeyspace("ks", "test").IfExists(), "DROP TABLE IF EXISTS ks.test"},
		{"type", DropType("test"), "DROP TYPE test"},
		{"type with keyspace", DropTypeInKeyspace("ks", "test"), "DROP TYPE ks.test"},
		{"type with keyspace if exists", DropTypeInKeyspace("ks", "test").IfExists(), "DROP TYPE IF EXISTS ks.test"},
		{"index", DropIndex("test"), "DROP INDEX test"},
		{"index with keyspace", DropIndexInKeyspace("ks", "test"), "DROP INDEX ks.test"},
		{"index with keyspace if exists", DropIndexInKeyspace("ks", "test").IfExists(), "DROP INDEX IF EXISTS ks.test"},
	}

	for _, item := range items {
		built, err := item.statement.Build()
		assert.Nil(t, err, item.name)
		assert.Equal(t, item.query, built, item.name)
	}
}

func TestDropValidation(t *testing.T) {
	items := []struct {
		name      string
		statement *Drop
		message   string
	}{
		{"reserved keyspace name", DropTableInKeyspace("add", "test"),
			"The keyspace name 'add' is not allowed because it is a reserved keyword"},
		{"reserved table name", DropTable("add"),
			"The table name 'add' is not allowed because it is a reserved keyword"},
		{"reserved type name", DropType("primary"),
			"The custom type name 'primary' is not allowed because it is a reserved keyword"},
		{"reserved index name", DropIndex("token"),
			"The index name 'token' is not allowed because it is a reserved keyword"},
		{"empty table name", DropTable(""), "Table name should not be null or blank"},
		{"empty keyspace name", DropTableInKeyspace("", "test"), "Keyspace name should not be null or blank"},
	}

	for _, item := range items {
		built, err := item.statement.Build()
		assert.Empty(t, built, item.name)
		if assert.Error(t, err, item.name) {
			assert.IsType(t, &ConfigurationError{}, err, item.name)
			assert.Equal(t, item.message, err.Error(), item.name)
		}
	}
}

func TestDropKeywordMatchIsCaseSensitive(t *testing.T) {
	built, err := DropTable("ADD").Build()
	assert.Nil(t, err)
	assert.Equal(t, "DROP TABLE ADD", built)
}

func TestDropBuildIsIdempotent(t *testing.T) {
	statement := DropTableInKeyspace("ks", "test").IfExists()

	first, err := statement.Build()
	assert.Nil(t, err)
	second, err := statement.Build()
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}
