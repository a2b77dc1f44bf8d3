package schemabuilder

// Drop is an in-construction DROP TABLE, DROP TYPE or DROP INDEX statement.
// Create instances with DropTable, DropType, DropIndex or their InKeyspace
// variants.
type Drop struct {
	cache        statementCache
	itemType     string
	keyspaceName string
	name         string
	ifExists     bool
	err          error
}

func newDrop(keyspaceName string, name string, itemType string, label string, kind string) *Drop {
	d := &Drop{itemType: itemType, keyspaceName: keyspaceName, name: name}
	if keyspaceName != "" {
		d.fail(validateIdentifier(keyspaceName, "Keyspace name", "keyspace name"))
	}
	d.fail(validateIdentifier(name, label, kind))
	return d
}

func (d *Drop) fail(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

// IfExists uses the 'IF EXISTS' condition for the drop.
func (d *Drop) IfExists() *Drop {
	d.ifExists = true
	return d
}

// Build renders the DROP statement.
func (d *Drop) Build() (string, error) {
	return d.cache.build(d.render)
}

func (d *Drop) render() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	statement := "DROP " + d.itemType + " "
	if d.ifExists {
		statement += "IF EXISTS "
	}
	return statement + qualifiedName(d.keyspaceName, d.name), nil
}
