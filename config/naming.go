package config

import "github.com/iancoleman/strcase"

// NamingConvention converts identifiers from a schema definition file into
// the names used in the generated statements.
type NamingConvention interface {
	ToCQLTable(name string) string
	ToCQLColumn(name string) string
	ToCQLType(name string) string
}

// snakeCaseNaming lowers every identifier to snake_case, the usual CQL
// convention.
type snakeCaseNaming struct {
}

func NewSnakeCaseNaming() *snakeCaseNaming {
	return &snakeCaseNaming{}
}

func (n *snakeCaseNaming) ToCQLTable(name string) string {
	// TODO: Fix numbers: "Table2" or "table2" --> "table_2"
	return strcase.ToSnake(name)
}

func (n *snakeCaseNaming) ToCQLColumn(name string) string {
	return strcase.ToSnake(name)
}

func (n *snakeCaseNaming) ToCQLType(name string) string {
	return strcase.ToSnake(name)
}

// verbatimNaming keeps identifiers exactly as written in the definition
// file.
type verbatimNaming struct {
}

func NewVerbatimNaming() *verbatimNaming {
	return &verbatimNaming{}
}

func (n *verbatimNaming) ToCQLTable(name string) string {
	return name
}

func (n *verbatimNaming) ToCQLColumn(name string) string {
	return name
}

func (n *verbatimNaming) ToCQLType(name string) string {
	return name
}
