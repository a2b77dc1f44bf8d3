package schemabuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateIndexGeneration(t *testing.T) {
	items := []struct {
		name      string
		statement SchemaStatement
		expected  string
	}{
		{"plain index",
			CreateIndex("idx").OnTable("test").AndColumn("c"),
			"CREATE INDEX idx ON test (c)"},
		{"keyspace qualified table",
			CreateIndex("idx").OnTableInKeyspace("ks", "test").AndColumn("c"),
			"CREATE INDEX idx ON ks.test (c)"},
		{"if not exists",
			CreateIndex("idx").IfNotExists().OnTable("test").AndColumn("c"),
			"CREATE INDEX IF NOT EXISTS idx ON test (c)"},
		{"keys of map column",
			CreateIndex("idx").OnTable("test").AndKeysOfColumn("addresses"),
			"CREATE INDEX idx ON test (KEYS(addresses))"},
		{"last column declaration wins",
			CreateIndex("idx").OnTable("test").AndKeysOfColumn("a").AndColumn("b"),
			"CREATE INDEX idx ON test (b)"},
	}

	for _, item := range items {
		built, err := item.statement.Build()
		assert.Nil(t, err, item.name)
		assert.Equal(t, item.expected, built, item.name)
	}
}

func TestCreateIndexValidation(t *testing.T) {
	items := []struct {
		name      string
		statement SchemaStatement
		message   string
	}{
		{"keyword index name",
			CreateIndex("create").OnTable("test").AndColumn("c"),
			"The index name 'create' is not allowed because it is a reserved keyword"},
		{"blank index name",
			CreateIndex(" "),
			"Index name should not be null or blank"},
		{"keyword table name",
			CreateIndex("idx").OnTable("from").AndColumn("c"),
			"The table name 'from' is not allowed because it is a reserved keyword"},
		{"keyword keyspace name",
			CreateIndex("idx").OnTableInKeyspace("where", "test").AndColumn("c"),
			"The keyspace name 'where' is not allowed because it is a reserved keyword"},
		{"blank column name",
			CreateIndex("idx").OnTable("test").AndColumn(""),
			"Column name should not be null or blank"},
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

func TestCreateIndexStateValidation(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		built, err := CreateIndex("idx").AndColumn("c").Build()

		assert.Empty(t, built)
		if assert.Error(t, err) {
			assert.IsType(t, &StateError{}, err)
			assert.Equal(t, "No table specified for the index 'idx'", err.Error())
		}
	})

	t.Run("missing column", func(t *testing.T) {
		built, err := CreateIndex("idx").OnTable("test").Build()

		assert.Empty(t, built)
		if assert.Error(t, err) {
			assert.IsType(t, &StateError{}, err)
			assert.Equal(t, "No column specified for the index 'idx'", err.Error())
		}
	})
}
