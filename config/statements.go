package config

import (
	"github.com/datastax/cassandra-schema-builder/schemabuilder"
)

// ToStatements lowers a schema definition into executable statements: types
// first, then tables, then indexes, preserving file order within each group.
// Builder errors surface when the statements are built.
func (s *SchemaDefinition) ToStatements(naming NamingConvention) []schemabuilder.SchemaStatement {
	statements := make([]schemabuilder.SchemaStatement, 0,
		len(s.Types)+len(s.Tables)+len(s.Indexes))

	for _, typeDefinition := range s.Types {
		statements = append(statements, s.typeStatement(typeDefinition, naming))
	}
	for _, tableDefinition := range s.Tables {
		statements = append(statements, s.tableStatement(tableDefinition, naming))
	}
	for _, indexDefinition := range s.Indexes {
		statements = append(statements, s.indexStatement(indexDefinition, naming))
	}
	return statements
}

func (s *SchemaDefinition) typeStatement(definition TypeDefinition, naming NamingConvention) schemabuilder.SchemaStatement {
	create := schemabuilder.CreateTypeInKeyspace(s.Keyspace, naming.ToCQLType(definition.Name))
	for _, column := range definition.Columns {
		name := naming.ToCQLColumn(column.Name)
		if isFrozen(column.Type) {
			create.AddUDTColumn(name, schemabuilder.UDTLiteral(column.Type))
		} else {
			create.AddColumn(name, schemabuilder.NativeType(column.Type))
		}
	}
	return create
}

func (s *SchemaDefinition) tableStatement(definition TableDefinition, naming NamingConvention) schemabuilder.SchemaStatement {
	create := schemabuilder.CreateTableInKeyspace(s.Keyspace, naming.ToCQLTable(definition.Name))
	if definition.IfNotExists {
		create.IfNotExists()
	}

	for _, column := range definition.PartitionKeys {
		name := naming.ToCQLColumn(column.Name)
		if isFrozen(column.Type) {
			create.AddUDTPartitionKey(name, schemabuilder.UDTLiteral(column.Type))
		} else {
			create.AddPartitionKey(name, schemabuilder.NativeType(column.Type))
		}
	}

	var orders []schemabuilder.ColumnOrder
	for _, key := range definition.ClusteringKeys {
		name := naming.ToCQLColumn(key.Name)
		if isFrozen(key.Type) {
			create.AddUDTClusteringKey(name, schemabuilder.UDTLiteral(key.Type))
		} else {
			create.AddClusteringKey(name, schemabuilder.NativeType(key.Type))
		}
		if key.Order != "" {
			orders = append(orders, schemabuilder.ColumnOrder{
				Column: name,
				Order:  schemabuilder.Sorting(key.Order),
			})
		}
	}

	for _, column := range definition.Columns {
		name := naming.ToCQLColumn(column.Name)
		switch {
		case column.Static && isFrozen(column.Type):
			create.AddUDTStaticColumn(name, schemabuilder.UDTLiteral(column.Type))
		case column.Static:
			create.AddStaticColumn(name, schemabuilder.NativeType(column.Type))
		case isFrozen(column.Type):
			create.AddUDTColumn(name, schemabuilder.UDTLiteral(column.Type))
		default:
			create.AddColumn(name, schemabuilder.NativeType(column.Type))
		}
	}

	options := definition.Options
	if options == nil && len(orders) == 0 {
		return create
	}

	withOptions := create.WithOptions()
	if options != nil {
		if options.Comment != "" {
			withOptions.Comment(options.Comment)
		}
		if options.DefaultTimeToLive != nil {
			withOptions.DefaultTimeToLive(*options.DefaultTimeToLive)
		}
		if options.GcGraceSeconds != nil {
			withOptions.GcGraceSeconds(*options.GcGraceSeconds)
		}
		if options.CompactStorage {
			withOptions.CompactStorage()
		}
	}
	if len(orders) > 0 {
		withOptions.ClusteringOrder(orders...)
	}
	return withOptions
}

func (s *SchemaDefinition) indexStatement(definition IndexDefinition, naming NamingConvention) schemabuilder.SchemaStatement {
	create := schemabuilder.CreateIndex(naming.ToCQLTable(definition.Name)).
		OnTableInKeyspace(s.Keyspace, naming.ToCQLTable(definition.Table))
	if definition.Keys {
		return create.AndKeysOfColumn(naming.ToCQLColumn(definition.Column))
	}
	return create.AndColumn(naming.ToCQLColumn(definition.Column))
}
