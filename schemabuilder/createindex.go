package schemabuilder

import "fmt"

// CreateIndexStatement is an in-construction CREATE INDEX statement. Create
// instances with CreateIndex.
type CreateIndexStatement struct {
	cache        statementCache
	indexName    string
	keyspaceName string
	tableName    string
	columnName   string
	keysOfMap    bool
	ifNotExists  bool
	err          error
}

func newCreateIndex(indexName string) *CreateIndexStatement {
	c := &CreateIndexStatement{indexName: indexName}
	c.fail(validateIdentifier(indexName, "Index name", "index name"))
	return c
}

func (c *CreateIndexStatement) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// IfNotExists uses the 'IF NOT EXISTS' CAS condition for the creation.
func (c *CreateIndexStatement) IfNotExists() *CreateIndexStatement {
	c.ifNotExists = true
	return c
}

// OnTable sets the table the index is created on.
func (c *CreateIndexStatement) OnTable(tableName string) *CreateIndexStatement {
	c.fail(validateIdentifier(tableName, "Table name", "table name"))
	c.tableName = tableName
	return c
}

// OnTableInKeyspace sets the keyspace-qualified table the index is created
// on.
func (c *CreateIndexStatement) OnTableInKeyspace(keyspaceName string, tableName string) *CreateIndexStatement {
	c.fail(validateIdentifier(keyspaceName, "Keyspace name", "keyspace name"))
	c.fail(validateIdentifier(tableName, "Table name", "table name"))
	c.keyspaceName = keyspaceName
	c.tableName = tableName
	return c
}

// AndColumn sets the indexed column.
func (c *CreateIndexStatement) AndColumn(columnName string) *CreateIndexStatement {
	c.fail(validateIdentifier(columnName, "Column name", "column name"))
	c.columnName = columnName
	c.keysOfMap = false
	return c
}

// AndKeysOfColumn indexes the keys of the given map column.
func (c *CreateIndexStatement) AndKeysOfColumn(columnName string) *CreateIndexStatement {
	c.fail(validateIdentifier(columnName, "Column name", "column name"))
	c.columnName = columnName
	c.keysOfMap = true
	return c
}

// Build renders the CREATE INDEX statement.
func (c *CreateIndexStatement) Build() (string, error) {
	return c.cache.build(c.render)
}

func (c *CreateIndexStatement) render() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.tableName == "" {
		return "", NewStateError(fmt.Sprintf(
			"No table specified for the index '%s'", c.indexName))
	}
	if c.columnName == "" {
		return "", NewStateError(fmt.Sprintf(
			"No column specified for the index '%s'", c.indexName))
	}

	statement := "CREATE INDEX "
	if c.ifNotExists {
		statement += "IF NOT EXISTS "
	}
	statement += c.indexName + " ON " + qualifiedName(c.keyspaceName, c.tableName)
	if c.keysOfMap {
		return statement + " (KEYS(" + c.columnName + "))", nil
	}
	return statement + " (" + c.columnName + ")", nil
}
