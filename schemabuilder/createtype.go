package schemabuilder

import (
	"fmt"
	"strings"
)

// CreateTypeStatement is an in-construction CREATE TYPE statement. Create
// instances with CreateType or CreateTypeInKeyspace.
type CreateTypeStatement struct {
	cache        statementCache
	keyspaceName string
	typeName     string
	ifNotExists  bool
	columns      columnMap
	err          error
}

func newCreateType(keyspaceName string, typeName string) *CreateTypeStatement {
	c := &CreateTypeStatement{keyspaceName: keyspaceName, typeName: typeName}
	if keyspaceName != "" {
		c.fail(validateIdentifier(keyspaceName, "Keyspace name", "keyspace name"))
	}
	c.fail(validateIdentifier(typeName, "Custom type name", "custom type name"))
	return c
}

func (c *CreateTypeStatement) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// IfNotExists uses the 'IF NOT EXISTS' CAS condition for the creation.
func (c *CreateTypeStatement) IfNotExists() *CreateTypeStatement {
	c.ifNotExists = true
	return c
}

// AddColumn adds a field of a native or collection type.
func (c *CreateTypeStatement) AddColumn(columnName string, dataType NativeType) *CreateTypeStatement {
	return c.add(columnName, dataType)
}

// AddUDTColumn adds a field of a frozen UDT type.
func (c *CreateTypeStatement) AddUDTColumn(columnName string, udtType UDTType) *CreateTypeStatement {
	return c.add(columnName, udtType)
}

// AddUDTListColumn adds a field holding a list of UDT elements.
func (c *CreateTypeStatement) AddUDTListColumn(columnName string, elementType UDTType) *CreateTypeStatement {
	return c.add(columnName, udtListOf(elementType))
}

// AddUDTSetColumn adds a field holding a set of UDT elements.
func (c *CreateTypeStatement) AddUDTSetColumn(columnName string, elementType UDTType) *CreateTypeStatement {
	return c.add(columnName, udtSetOf(elementType))
}

// AddUDTMapColumn adds a field holding a map with UDT keys and values.
func (c *CreateTypeStatement) AddUDTMapColumn(columnName string, keyType UDTType, valueType UDTType) *CreateTypeStatement {
	return c.add(columnName, mapWithUDTKeyAndValue(keyType, valueType))
}

// AddUDTKeyMapColumn adds a field holding a map with UDT keys and native
// values.
func (c *CreateTypeStatement) AddUDTKeyMapColumn(columnName string, keyType UDTType, valueType NativeType) *CreateTypeStatement {
	return c.add(columnName, mapWithUDTKey(keyType, valueType))
}

// AddUDTValueMapColumn adds a field holding a map with native keys and UDT
// values.
func (c *CreateTypeStatement) AddUDTValueMapColumn(columnName string, keyType NativeType, valueType UDTType) *CreateTypeStatement {
	return c.add(columnName, mapWithUDTValue(keyType, valueType))
}

func (c *CreateTypeStatement) add(columnName string, columnType ColumnType) *CreateTypeStatement {
	if err := validateColumn(columnName, "Column name", "column name",
		columnType, "Column type"); err != nil {
		c.fail(err)
		return c
	}
	c.columns.put(columnName, columnType)
	return c
}

// Build renders the CREATE TYPE statement.
func (c *CreateTypeStatement) Build() (string, error) {
	return c.cache.build(c.render)
}

func (c *CreateTypeStatement) render() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.columns.size() == 0 {
		return "", NewStateError(fmt.Sprintf(
			"There should be at least one column defined for the type '%s'", c.typeName))
	}

	statement := "CREATE TYPE "
	if c.ifNotExists {
		statement += "IF NOT EXISTS "
	}
	statement += qualifiedName(c.keyspaceName, c.typeName)
	statement += " (" + strings.Join(c.columns.declarations(""), ", ") + ")"
	return statement, nil
}
