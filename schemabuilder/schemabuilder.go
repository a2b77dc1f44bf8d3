// Package schemabuilder assembles CQL schema definition statements (CREATE,
// ALTER and DROP of tables, types and indexes) through fluent builders.
//
// Builders are obtained from the factory functions of this package, chained
// through configuration calls and finished with Build, which validates the
// accumulated state and returns the statement text. Argument errors are
// recorded at the offending call and returned by Build before any state
// validation or rendering; structural conflicts only detectable from the
// whole configuration are reported by Build as a StateError.
//
// Builders carry no synchronization: configuring one builder from several
// goroutines is a race. Once Build has been called the result is memoized
// and may be read concurrently.
package schemabuilder

import (
	"fmt"
	"strconv"
)

// CreateTable starts a CREATE TABLE statement.
func CreateTable(tableName string) *Create {
	return newCreate("", tableName)
}

// CreateTableInKeyspace starts a CREATE TABLE statement for a table in the
// given keyspace.
func CreateTableInKeyspace(keyspaceName string, tableName string) *Create {
	return newCreate(keyspaceName, tableName)
}

// CreateType starts a CREATE TYPE statement.
func CreateType(typeName string) *CreateTypeStatement {
	return newCreateType("", typeName)
}

// CreateTypeInKeyspace starts a CREATE TYPE statement for a type in the
// given keyspace.
func CreateTypeInKeyspace(keyspaceName string, typeName string) *CreateTypeStatement {
	return newCreateType(keyspaceName, typeName)
}

// AlterTable starts an ALTER TABLE statement.
func AlterTable(tableName string) *Alter {
	return newAlter("", tableName)
}

// AlterTableInKeyspace starts an ALTER TABLE statement for a table in the
// given keyspace.
func AlterTableInKeyspace(keyspaceName string, tableName string) *Alter {
	return newAlter(keyspaceName, tableName)
}

// CreateIndex starts a CREATE INDEX statement.
func CreateIndex(indexName string) *CreateIndexStatement {
	return newCreateIndex(indexName)
}

// DropTable starts a DROP TABLE statement.
func DropTable(tableName string) *Drop {
	return newDrop("", tableName, "TABLE", "Table name", "table name")
}

// DropTableInKeyspace starts a DROP TABLE statement for a table in the given
// keyspace.
func DropTableInKeyspace(keyspaceName string, tableName string) *Drop {
	return newDrop(keyspaceName, tableName, "TABLE", "Table name", "table name")
}

// DropType starts a DROP TYPE statement.
func DropType(typeName string) *Drop {
	return newDrop("", typeName, "TYPE", "Custom type name", "custom type name")
}

// DropTypeInKeyspace starts a DROP TYPE statement for a type in the given
// keyspace.
func DropTypeInKeyspace(keyspaceName string, typeName string) *Drop {
	return newDrop(keyspaceName, typeName, "TYPE", "Custom type name", "custom type name")
}

// DropIndex starts a DROP INDEX statement.
func DropIndex(indexName string) *Drop {
	return newDrop("", indexName, "INDEX", "Index name", "index name")
}

// DropIndexInKeyspace starts a DROP INDEX statement for an index in the
// given keyspace.
func DropIndexInKeyspace(keyspaceName string, indexName string) *Drop {
	return newDrop(keyspaceName, indexName, "INDEX", "Index name", "index name")
}

// Frozen builds the type representation of a frozen UDT: Frozen("foo")
// renders as frozen<foo>. UDT names are not table or column identifiers, so
// no keyword check applies.
func Frozen(udtName string) UDTType {
	return frozenUDT(udtName)
}

// UDTLiteral builds a type from a raw literal, exactly as it should appear
// in the final statement, e.g. "map<text, frozen<user>>".
func UDTLiteral(literal string) UDTType {
	return rawUDTLiteral(literal)
}

// SizeTieredStrategy creates options for the size-tiered compaction
// strategy.
func SizeTieredStrategy() *SizeTieredCompactionStrategy {
	return &SizeTieredCompactionStrategy{
		compactionOptions: compactionOptions{strategyClass: "SizeTieredCompactionStrategy"},
	}
}

// LeveledStrategy creates options for the leveled compaction strategy.
func LeveledStrategy() *LeveledCompactionStrategy {
	return &LeveledCompactionStrategy{
		compactionOptions: compactionOptions{strategyClass: "LeveledCompactionStrategy"},
	}
}

// DateTieredStrategy creates options for the date-tiered compaction
// strategy.
func DateTieredStrategy() *DateTieredCompactionStrategy {
	return &DateTieredCompactionStrategy{
		compactionOptions: compactionOptions{strategyClass: "DateTieredCompactionStrategy"},
	}
}

// NoCompression disables SSTable compression; chunk length and CRC check
// chance are ignored on this variant.
func NoCompression() *CompressionOptions {
	return newCompressionOptions("")
}

// LZ4 creates options for the LZ4 compression algorithm.
func LZ4() *CompressionOptions {
	return newCompressionOptions("LZ4Compressor")
}

// Snappy creates options for the Snappy compression algorithm.
func Snappy() *CompressionOptions {
	return newCompressionOptions("SnappyCompressor")
}

// Deflate creates options for the Deflate compression algorithm.
func Deflate() *CompressionOptions {
	return newCompressionOptions("DeflateCompressor")
}

// NoSpeculativeRetry creates the speculative retry policy that never retries
// reads.
func NoSpeculativeRetry() SpeculativeRetryValue {
	return SpeculativeRetryValue{value: "'NONE'"}
}

// AlwaysRetry creates the speculative retry policy that retries reads of all
// replicas.
func AlwaysRetry() SpeculativeRetryValue {
	return SpeculativeRetryValue{value: "'ALWAYS'"}
}

// Percentile creates the speculative retry policy that retries once the
// given percentile of the typical read latency has passed. The percentile
// must be between 0 and 100.
func Percentile(percentile int) SpeculativeRetryValue {
	if percentile < 0 || percentile > 100 {
		return SpeculativeRetryValue{err: NewConfigurationError(
			"Percentile value for speculative retry should be between 0 and 100")}
	}
	return SpeculativeRetryValue{value: fmt.Sprintf("'%dpercentile'", percentile)}
}

// Millisecs creates the speculative retry policy that retries after the
// given delay.
func Millisecs(millisecs int) SpeculativeRetryValue {
	if millisecs < 0 {
		return SpeculativeRetryValue{err: NewConfigurationError(
			"Millisecond value for speculative retry should be positive")}
	}
	return SpeculativeRetryValue{value: fmt.Sprintf("'%dms'", millisecs)}
}

// NoRows creates the row caching option that never caches rows.
func NoRows() CachingRowsPerPartition {
	return CachingRowsPerPartition{value: "NONE"}
}

// AllRows creates the row caching option that caches all rows of a
// partition.
func AllRows() CachingRowsPerPartition {
	return CachingRowsPerPartition{value: "ALL"}
}

// Rows creates the row caching option that caches the given number of rows
// per partition. The count must be strictly positive.
func Rows(rowNumber int) CachingRowsPerPartition {
	if rowNumber <= 0 {
		return CachingRowsPerPartition{err: NewConfigurationError(
			"Rows number for caching should be strictly positive")}
	}
	return CachingRowsPerPartition{value: strconv.Itoa(rowNumber)}
}
