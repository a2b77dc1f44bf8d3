package schemabuilder

import (
	"fmt"
	"strings"
)

const (
	alterOpAlter  = "ALTER"
	alterOpAdd    = "ADD"
	alterOpRename = "RENAME"
	alterOpDrop   = "DROP"
)

type alterOperation struct {
	kind       string
	columnName string
	newName    string
	columnType ColumnType
}

// Alter is an in-construction ALTER TABLE statement. Create instances with
// AlterTable or AlterTableInKeyspace. One alteration is rendered per
// statement; declaring a second one replaces the first. Option changes are
// rendered through WithOptions instead.
type Alter struct {
	cache        statementCache
	keyspaceName string
	tableName    string
	operation    *alterOperation
	err          error
}

func newAlter(keyspaceName string, tableName string) *Alter {
	a := &Alter{keyspaceName: keyspaceName, tableName: tableName}
	if keyspaceName != "" {
		a.fail(validateIdentifier(keyspaceName, "Keyspace name", "keyspace name"))
	}
	a.fail(validateIdentifier(tableName, "Table name", "table name"))
	return a
}

func (a *Alter) fail(err error) {
	if a.err == nil && err != nil {
		a.err = err
	}
}

// AlterColumn changes the type of an existing column.
func (a *Alter) AlterColumn(columnName string, newType ColumnType) *Alter {
	if err := validateColumn(columnName, "Column name", "column name",
		newType, "Column type"); err != nil {
		a.fail(err)
		return a
	}
	a.operation = &alterOperation{kind: alterOpAlter, columnName: columnName, columnType: newType}
	return a
}

// AddColumn adds a new column to the table. UDT and collection types are
// passed the same way as native ones since ColumnType covers them all.
func (a *Alter) AddColumn(columnName string, columnType ColumnType) *Alter {
	if err := validateColumn(columnName, "Column name", "column name",
		columnType, "Column type"); err != nil {
		a.fail(err)
		return a
	}
	a.operation = &alterOperation{kind: alterOpAdd, columnName: columnName, columnType: columnType}
	return a
}

// RenameColumn renames an existing column.
func (a *Alter) RenameColumn(columnName string, newName string) *Alter {
	if err := validateIdentifier(columnName, "Column name", "column name"); err != nil {
		a.fail(err)
		return a
	}
	if err := validateIdentifier(newName, "New column name", "column name"); err != nil {
		a.fail(err)
		return a
	}
	a.operation = &alterOperation{kind: alterOpRename, columnName: columnName, newName: newName}
	return a
}

// DropColumn removes a column from the table.
func (a *Alter) DropColumn(columnName string) *Alter {
	if err := validateIdentifier(columnName, "Column name", "column name"); err != nil {
		a.fail(err)
		return a
	}
	a.operation = &alterOperation{kind: alterOpDrop, columnName: columnName}
	return a
}

// WithOptions starts an option-only ALTER TABLE statement.
func (a *Alter) WithOptions() *AlterOptions {
	return &AlterOptions{alter: a}
}

// Build renders the ALTER TABLE statement for the declared alteration.
func (a *Alter) Build() (string, error) {
	return a.cache.build(a.render)
}

func (a *Alter) render() (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if a.operation == nil {
		return "", NewStateError(fmt.Sprintf(
			"No alteration specified for the table '%s'", a.tableName))
	}

	statement := "ALTER TABLE " + qualifiedName(a.keyspaceName, a.tableName)
	op := a.operation
	switch op.kind {
	case alterOpAlter:
		statement += " ALTER " + op.columnName + " TYPE " + op.columnType.AsCQL()
	case alterOpAdd:
		statement += " ADD " + op.columnName + " " + op.columnType.AsCQL()
	case alterOpRename:
		statement += " RENAME " + op.columnName + " TO " + op.newName
	case alterOpDrop:
		statement += " DROP " + op.columnName
	}
	return statement, nil
}

// AlterOptions is the option clause of an option-only ALTER TABLE statement.
type AlterOptions struct {
	cache   statementCache
	alter   *Alter
	options tableOptions
}

// Caching sets the caching type (Cassandra 2.0.x form).
func (o *AlterOptions) Caching(caching Caching) *AlterOptions {
	o.options.setCaching(caching)
	return o
}

// CachingWithRowsPerPartition sets the combined caching option (Cassandra
// 2.1.x form).
func (o *AlterOptions) CachingWithRowsPerPartition(keys Caching, rowsPerPartition CachingRowsPerPartition) *AlterOptions {
	o.options.setCachingRows(keys, rowsPerPartition)
	return o
}

// BloomFilterFPChance sets the desired false-positive probability for
// SSTable bloom filters, between 0 and 1.
func (o *AlterOptions) BloomFilterFPChance(fpChance float64) *AlterOptions {
	o.options.setBloomFilterFPChance(fpChance)
	return o
}

// Comment sets a human readable table comment.
func (o *AlterOptions) Comment(comment string) *AlterOptions {
	o.options.setComment(comment)
	return o
}

// Compression sets the compression options.
func (o *AlterOptions) Compression(compression *CompressionOptions) *AlterOptions {
	o.options.setCompression(compression)
	return o
}

// Compaction sets the compaction strategy options.
func (o *AlterOptions) Compaction(compaction CompactionStrategy) *AlterOptions {
	o.options.setCompaction(compaction)
	return o
}

// DcLocalReadRepairChance sets the probability of read repairs across
// replicas of the local data center, between 0 and 1.
func (o *AlterOptions) DcLocalReadRepairChance(chance float64) *AlterOptions {
	o.options.setDcLocalReadRepairChance(chance)
	return o
}

// DefaultTimeToLive sets the default expiration time in seconds.
func (o *AlterOptions) DefaultTimeToLive(ttl int) *AlterOptions {
	o.options.setDefaultTimeToLive(ttl)
	return o
}

// GcGraceSeconds sets the time to wait before garbage collecting tombstones.
func (o *AlterOptions) GcGraceSeconds(seconds int64) *AlterOptions {
	o.options.setGcGraceSeconds(seconds)
	return o
}

// IndexInterval sets the primary row index sampling interval (2.0.x).
func (o *AlterOptions) IndexInterval(interval int) *AlterOptions {
	o.options.setIndexInterval(interval)
	return o
}

// MinIndexInterval sets the minimum index sampling interval (2.1.x).
func (o *AlterOptions) MinIndexInterval(interval int) *AlterOptions {
	o.options.setMinIndexInterval(interval)
	return o
}

// MaxIndexInterval sets the maximum index sampling interval (2.1.x).
func (o *AlterOptions) MaxIndexInterval(interval int) *AlterOptions {
	o.options.setMaxIndexInterval(interval)
	return o
}

// MemtableFlushPeriodInMillis forces a memtable flush after the given
// period.
func (o *AlterOptions) MemtableFlushPeriodInMillis(millis int64) *AlterOptions {
	o.options.setMemtableFlushPeriodInMillis(millis)
	return o
}

// PopulateIOCacheOnFlush adds newly flushed or compacted SSTables to the
// operating system page cache.
func (o *AlterOptions) PopulateIOCacheOnFlush(populate bool) *AlterOptions {
	o.options.setPopulateIOCacheOnFlush(populate)
	return o
}

// ReadRepairChance sets the probability of read repairs on non-quorum
// reads, between 0 and 1.
func (o *AlterOptions) ReadRepairChance(chance float64) *AlterOptions {
	o.options.setReadRepairChance(chance)
	return o
}

// ReplicateOnWrite replicates writes to all affected replicas regardless of
// the client consistency level (2.0.x, counter tables).
func (o *AlterOptions) ReplicateOnWrite(replicate bool) *AlterOptions {
	o.options.setReplicateOnWrite(replicate)
	return o
}

// SpeculativeRetry sets the speculative retry policy.
func (o *AlterOptions) SpeculativeRetry(retry SpeculativeRetryValue) *AlterOptions {
	o.options.setSpeculativeRetry(retry)
	return o
}

// FreeformOption records a raw key/value option pair.
func (o *AlterOptions) FreeformOption(key string, value interface{}) *AlterOptions {
	o.options.setFreeformOption(key, value)
	return o
}

// Build renders the option-only ALTER TABLE statement.
func (o *AlterOptions) Build() (string, error) {
	return o.cache.build(o.render)
}

func (o *AlterOptions) render() (string, error) {
	if o.alter.err != nil {
		return "", o.alter.err
	}
	options, err := o.options.renderCommon()
	if err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", NewStateError(fmt.Sprintf(
			"No option specified for altering the table '%s'", o.alter.tableName))
	}
	return "ALTER TABLE " + qualifiedName(o.alter.keyspaceName, o.alter.tableName) +
		" WITH " + strings.Join(options, " AND "), nil
}
