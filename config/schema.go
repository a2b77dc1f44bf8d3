package config

import (
	"strings"

	"github.com/spf13/viper"
)

// SchemaDefinition is the root of a schema definition file. Files are
// expressed in YAML or JSON and decoded through viper, so either format
// works.
type SchemaDefinition struct {
	Keyspace string            `mapstructure:"keyspace" validate:"required"`
	Types    []TypeDefinition  `mapstructure:"types" validate:"dive"`
	Tables   []TableDefinition `mapstructure:"tables" validate:"dive"`
	Indexes  []IndexDefinition `mapstructure:"indexes" validate:"dive"`
}

type TypeDefinition struct {
	Name    string             `mapstructure:"name" validate:"required"`
	Columns []ColumnDefinition `mapstructure:"columns" validate:"required,min=1,dive"`
}

type TableDefinition struct {
	Name           string                    `mapstructure:"name" validate:"required"`
	PartitionKeys  []ColumnDefinition        `mapstructure:"partitionKeys" validate:"required,min=1,dive"`
	ClusteringKeys []ClusteringKeyDefinition `mapstructure:"clusteringKeys" validate:"dive"`
	Columns        []ColumnDefinition        `mapstructure:"columns" validate:"dive"`
	IfNotExists    bool                      `mapstructure:"ifNotExists"`
	Options        *TableOptionsDefinition   `mapstructure:"options"`
}

type ColumnDefinition struct {
	Name   string `mapstructure:"name" validate:"required"`
	Type   string `mapstructure:"type" validate:"required"`
	Static bool   `mapstructure:"static"`
}

type ClusteringKeyDefinition struct {
	Name  string `mapstructure:"name" validate:"required"`
	Type  string `mapstructure:"type" validate:"required"`
	Order string `mapstructure:"order" validate:"omitempty,oneof=ASC DESC"`
}

type TableOptionsDefinition struct {
	Comment           string `mapstructure:"comment"`
	DefaultTimeToLive *int   `mapstructure:"defaultTimeToLive"`
	GcGraceSeconds    *int64 `mapstructure:"gcGraceSeconds"`
	CompactStorage    bool   `mapstructure:"compactStorage"`
}

type IndexDefinition struct {
	Name   string `mapstructure:"name" validate:"required"`
	Table  string `mapstructure:"table" validate:"required"`
	Column string `mapstructure:"column" validate:"required"`
	Keys   bool   `mapstructure:"keys"`
}

// LoadSchemaFile reads and validates a schema definition file.
func LoadSchemaFile(path string) (*SchemaDefinition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return decodeSchema(v)
}

func decodeSchema(v *viper.Viper) (*SchemaDefinition, error) {
	definition := &SchemaDefinition{}
	if err := v.Unmarshal(definition); err != nil {
		return nil, err
	}
	if err := validateSchema(definition); err != nil {
		return nil, err
	}
	return definition, nil
}

// isFrozen reports whether a column type expression references a UDT rather
// than a native type.
func isFrozen(typeExpression string) bool {
	return strings.HasPrefix(typeExpression, "frozen<")
}
