package schemabuilder

import (
	"fmt"
	"strings"
)

// Sorting is the direction of a clustering order declaration.
type Sorting string

const (
	Asc  Sorting = "ASC"
	Desc Sorting = "DESC"
)

// ColumnOrder pairs a clustering column with its sort direction.
type ColumnOrder struct {
	Column string
	Order  Sorting
}

// Create is an in-construction CREATE TABLE statement. Create instances with
// CreateTable or CreateTableInKeyspace. Configuration calls mutate the
// builder and return it; the builder is not safe for concurrent mutation.
type Create struct {
	cache             statementCache
	keyspaceName      string
	tableName         string
	ifNotExists       bool
	partitionColumns  columnMap
	clusteringColumns columnMap
	staticColumns     columnMap
	simpleColumns     columnMap
	err               error
}

func newCreate(keyspaceName string, tableName string) *Create {
	c := &Create{keyspaceName: keyspaceName, tableName: tableName}
	if keyspaceName != "" {
		c.fail(validateIdentifier(keyspaceName, "Keyspace name", "keyspace name"))
	}
	c.fail(validateIdentifier(tableName, "Table name", "table name"))
	return c
}

func (c *Create) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// IfNotExists uses the 'IF NOT EXISTS' CAS condition for the creation.
func (c *Create) IfNotExists() *Create {
	c.ifNotExists = true
	return c
}

// AddPartitionKey adds a partition key column. Partition keys appear in the
// primary key clause in their declaration order.
func (c *Create) AddPartitionKey(columnName string, dataType NativeType) *Create {
	return c.addPartitionColumn(columnName, dataType)
}

// AddUDTPartitionKey adds a partition key column of a frozen UDT type.
func (c *Create) AddUDTPartitionKey(columnName string, udtType UDTType) *Create {
	return c.addPartitionColumn(columnName, udtType)
}

func (c *Create) addPartitionColumn(columnName string, columnType ColumnType) *Create {
	if err := validateColumn(columnName, "Partition key name", "partition key name",
		columnType, "Partition key type"); err != nil {
		c.fail(err)
		return c
	}
	c.partitionColumns.put(columnName, columnType)
	return c
}

// AddClusteringKey adds a clustering key column. Clustering keys appear in
// the primary key clause in their declaration order, after the partition
// key.
func (c *Create) AddClusteringKey(columnName string, dataType NativeType) *Create {
	return c.addClusteringColumn(columnName, dataType)
}

// AddUDTClusteringKey adds a clustering key column of a frozen UDT type.
func (c *Create) AddUDTClusteringKey(columnName string, udtType UDTType) *Create {
	return c.addClusteringColumn(columnName, udtType)
}

func (c *Create) addClusteringColumn(columnName string, columnType ColumnType) *Create {
	if err := validateColumn(columnName, "Clustering key name", "clustering key name",
		columnType, "Clustering key type"); err != nil {
		c.fail(err)
		return c
	}
	c.clusteringColumns.put(columnName, columnType)
	return c
}

// AddStaticColumn adds a static column, shared by all rows of a partition.
func (c *Create) AddStaticColumn(columnName string, dataType NativeType) *Create {
	return c.addStatic(columnName, dataType)
}

// AddUDTStaticColumn adds a static column of a frozen UDT type.
func (c *Create) AddUDTStaticColumn(columnName string, udtType UDTType) *Create {
	return c.addStatic(columnName, udtType)
}

func (c *Create) addStatic(columnName string, columnType ColumnType) *Create {
	if err := validateColumn(columnName, "Column name", "static column name",
		columnType, "Column type"); err != nil {
		c.fail(err)
		return c
	}
	c.staticColumns.put(columnName, columnType)
	return c
}

// AddColumn adds a simple column. Collection types are built with ListOf,
// SetOf and MapOf.
func (c *Create) AddColumn(columnName string, dataType NativeType) *Create {
	return c.addSimple(columnName, dataType)
}

// AddUDTColumn adds a simple column of a frozen UDT type.
func (c *Create) AddUDTColumn(columnName string, udtType UDTType) *Create {
	return c.addSimple(columnName, udtType)
}

// AddUDTListColumn adds a simple column holding a list of UDT elements.
func (c *Create) AddUDTListColumn(columnName string, elementType UDTType) *Create {
	return c.addSimple(columnName, udtListOf(elementType))
}

// AddUDTSetColumn adds a simple column holding a set of UDT elements.
func (c *Create) AddUDTSetColumn(columnName string, elementType UDTType) *Create {
	return c.addSimple(columnName, udtSetOf(elementType))
}

// AddUDTMapColumn adds a simple column holding a map with UDT keys and
// values.
func (c *Create) AddUDTMapColumn(columnName string, keyType UDTType, valueType UDTType) *Create {
	return c.addSimple(columnName, mapWithUDTKeyAndValue(keyType, valueType))
}

// AddUDTKeyMapColumn adds a simple column holding a map with UDT keys and
// native values.
func (c *Create) AddUDTKeyMapColumn(columnName string, keyType UDTType, valueType NativeType) *Create {
	return c.addSimple(columnName, mapWithUDTKey(keyType, valueType))
}

// AddUDTValueMapColumn adds a simple column holding a map with native keys
// and UDT values.
func (c *Create) AddUDTValueMapColumn(columnName string, keyType NativeType, valueType UDTType) *Create {
	return c.addSimple(columnName, mapWithUDTValue(keyType, valueType))
}

func (c *Create) addSimple(columnName string, columnType ColumnType) *Create {
	if err := validateColumn(columnName, "Column name", "column name",
		columnType, "Column type"); err != nil {
		c.fail(err)
		return c
	}
	c.simpleColumns.put(columnName, columnType)
	return c
}

// WithOptions starts the table options clause of this CREATE TABLE
// statement. Build on the returned options renders the statement including
// the WITH clause.
func (c *Create) WithOptions() *CreateOptions {
	return &CreateOptions{create: c}
}

// Build renders the CREATE TABLE statement without a WITH clause.
func (c *Create) Build() (string, error) {
	return c.cache.build(c.render)
}

func (c *Create) render() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.partitionColumns.size() < 1 {
		return "", NewStateError(fmt.Sprintf(
			"There should be at least one partition key defined for the table '%s'", c.tableName))
	}
	if err := c.validateColumnRoles(); err != nil {
		return "", err
	}

	allColumns := c.partitionColumns.declarations("")
	allColumns = append(allColumns, c.clusteringColumns.declarations("")...)
	allColumns = append(allColumns, c.staticColumns.declarations(" STATIC")...)
	allColumns = append(allColumns, c.simpleColumns.declarations("")...)

	partitionKeyPart := c.partitionColumns.names[0]
	if c.partitionColumns.size() > 1 {
		partitionKeyPart = "(" + strings.Join(c.partitionColumns.names, ", ") + ")"
	}
	primaryKeyPart := partitionKeyPart
	if c.clusteringColumns.size() > 0 {
		primaryKeyPart += ", " + strings.Join(c.clusteringColumns.names, ", ")
	}

	statement := "CREATE TABLE "
	if c.ifNotExists {
		statement += "IF NOT EXISTS "
	}
	statement += qualifiedName(c.keyspaceName, c.tableName)
	statement += " (" + strings.Join(allColumns, ", ")
	statement += ", PRIMARY KEY (" + primaryKeyPart + "))"
	return statement, nil
}

// validateColumnRoles enforces that the four column role sets are pairwise
// disjoint and that static columns only appear alongside clustering columns.
func (c *Create) validateColumnRoles() error {
	checks := []struct {
		common []string
		roles  string
	}{
		{c.partitionColumns.intersect(&c.clusteringColumns), "partition keys and clustering keys"},
		{c.partitionColumns.intersect(&c.simpleColumns), "partition keys and simple columns"},
		{c.clusteringColumns.intersect(&c.simpleColumns), "clustering keys and simple columns"},
		{c.partitionColumns.intersect(&c.staticColumns), "partition keys and static columns"},
		{c.clusteringColumns.intersect(&c.staticColumns), "clustering keys and static columns"},
		{c.simpleColumns.intersect(&c.staticColumns), "simple columns and static columns"},
	}
	for _, check := range checks {
		if len(check.common) > 0 {
			return NewStateError(fmt.Sprintf(
				"The '%s' columns can not be declared as %s at the same time",
				formatNames(check.common), check.roles))
		}
	}
	if c.staticColumns.size() > 0 && c.clusteringColumns.size() == 0 {
		return NewStateError(fmt.Sprintf(
			"The table '%s' cannot declare static columns '%s' without clustering columns",
			c.tableName, formatNames(c.staticColumns.names)))
	}
	return nil
}

// CreateOptions is the table options clause of a CREATE TABLE statement.
type CreateOptions struct {
	cache               statementCache
	create              *Create
	options             tableOptions
	clusteringOrderKeys []ColumnOrder
	compactStorage      bool
}

// Caching sets the caching type (Cassandra 2.0.x form).
func (o *CreateOptions) Caching(caching Caching) *CreateOptions {
	o.options.setCaching(caching)
	return o
}

// CachingWithRowsPerPartition sets the combined caching option (Cassandra
// 2.1.x form). Only the ALL and NONE key cache types are permitted together
// with a rows-per-partition value.
func (o *CreateOptions) CachingWithRowsPerPartition(keys Caching, rowsPerPartition CachingRowsPerPartition) *CreateOptions {
	o.options.setCachingRows(keys, rowsPerPartition)
	return o
}

// BloomFilterFPChance sets the desired false-positive probability for
// SSTable bloom filters, between 0 and 1.
func (o *CreateOptions) BloomFilterFPChance(fpChance float64) *CreateOptions {
	o.options.setBloomFilterFPChance(fpChance)
	return o
}

// Comment sets a human readable table comment.
func (o *CreateOptions) Comment(comment string) *CreateOptions {
	o.options.setComment(comment)
	return o
}

// Compression sets the compression options.
func (o *CreateOptions) Compression(compression *CompressionOptions) *CreateOptions {
	o.options.setCompression(compression)
	return o
}

// Compaction sets the compaction strategy options.
func (o *CreateOptions) Compaction(compaction CompactionStrategy) *CreateOptions {
	o.options.setCompaction(compaction)
	return o
}

// DcLocalReadRepairChance sets the probability of read repairs across
// replicas of the local data center, between 0 and 1.
func (o *CreateOptions) DcLocalReadRepairChance(chance float64) *CreateOptions {
	o.options.setDcLocalReadRepairChance(chance)
	return o
}

// DefaultTimeToLive sets the default expiration time in seconds.
func (o *CreateOptions) DefaultTimeToLive(ttl int) *CreateOptions {
	o.options.setDefaultTimeToLive(ttl)
	return o
}

// GcGraceSeconds sets the time to wait before garbage collecting tombstones.
func (o *CreateOptions) GcGraceSeconds(seconds int64) *CreateOptions {
	o.options.setGcGraceSeconds(seconds)
	return o
}

// IndexInterval sets the primary row index sampling interval (2.0.x).
func (o *CreateOptions) IndexInterval(interval int) *CreateOptions {
	o.options.setIndexInterval(interval)
	return o
}

// MinIndexInterval sets the minimum index sampling interval (2.1.x).
func (o *CreateOptions) MinIndexInterval(interval int) *CreateOptions {
	o.options.setMinIndexInterval(interval)
	return o
}

// MaxIndexInterval sets the maximum index sampling interval (2.1.x).
func (o *CreateOptions) MaxIndexInterval(interval int) *CreateOptions {
	o.options.setMaxIndexInterval(interval)
	return o
}

// MemtableFlushPeriodInMillis forces a memtable flush after the given
// period.
func (o *CreateOptions) MemtableFlushPeriodInMillis(millis int64) *CreateOptions {
	o.options.setMemtableFlushPeriodInMillis(millis)
	return o
}

// PopulateIOCacheOnFlush adds newly flushed or compacted SSTables to the
// operating system page cache.
func (o *CreateOptions) PopulateIOCacheOnFlush(populate bool) *CreateOptions {
	o.options.setPopulateIOCacheOnFlush(populate)
	return o
}

// ReadRepairChance sets the probability of read repairs on non-quorum
// reads, between 0 and 1.
func (o *CreateOptions) ReadRepairChance(chance float64) *CreateOptions {
	o.options.setReadRepairChance(chance)
	return o
}

// ReplicateOnWrite replicates writes to all affected replicas regardless of
// the client consistency level (2.0.x, counter tables).
func (o *CreateOptions) ReplicateOnWrite(replicate bool) *CreateOptions {
	o.options.setReplicateOnWrite(replicate)
	return o
}

// SpeculativeRetry sets the speculative retry policy.
func (o *CreateOptions) SpeculativeRetry(retry SpeculativeRetryValue) *CreateOptions {
	o.options.setSpeculativeRetry(retry)
	return o
}

// FreeformOption records a raw key/value option pair, as a fallback for
// options this builder has no named setter for.
func (o *CreateOptions) FreeformOption(key string, value interface{}) *CreateOptions {
	o.options.setFreeformOption(key, value)
	return o
}

// ClusteringOrder declares the clustering order of the table. Every column
// must already be declared as a clustering key; the check happens at this
// call, not at Build.
func (o *CreateOptions) ClusteringOrder(orders ...ColumnOrder) *CreateOptions {
	if len(orders) == 0 {
		o.options.fail(NewConfigurationError(fmt.Sprintf(
			"Cannot create table '%s' with null or empty clustering order keys", o.create.tableName)))
		return o
	}
	for _, order := range orders {
		if err := validateNotEmpty(order.Column, "Column name for clustering order"); err != nil {
			o.options.fail(err)
			return o
		}
		if _, ok := o.create.clusteringColumns.types[order.Column]; !ok {
			o.options.fail(NewConfigurationError(fmt.Sprintf(
				"Clustering key '%s' is unknown. Did you forget to declare it first ?", order.Column)))
			return o
		}
	}
	o.clusteringOrderKeys = orders
	return o
}

// CompactStorage enables the compact storage option. Compact storage is
// incompatible with static columns; the conflict is reported at Build.
func (o *CreateOptions) CompactStorage() *CreateOptions {
	o.compactStorage = true
	return o
}

// Build renders the full CREATE TABLE statement including the WITH clause.
func (o *CreateOptions) Build() (string, error) {
	return o.cache.build(o.render)
}

func (o *CreateOptions) render() (string, error) {
	// Argument errors surface before any state validation. Column calls
	// precede option calls in a chain, so the base builder's error comes
	// first.
	if o.create.err != nil {
		return "", o.create.err
	}
	if err := o.options.configurationError(); err != nil {
		return "", err
	}

	statement, err := o.create.render()
	if err != nil {
		return "", err
	}

	options, err := o.options.renderCommon()
	if err != nil {
		return "", err
	}

	if len(o.clusteringOrderKeys) > 0 {
		orders := make([]string, 0, len(o.clusteringOrderKeys))
		for _, order := range o.clusteringOrderKeys {
			orders = append(orders, order.Column+" "+string(order.Order))
		}
		options = append(options, "CLUSTERING ORDER BY ("+strings.Join(orders, ", ")+")")
	}

	if o.compactStorage {
		if o.create.staticColumns.size() > 0 {
			return "", NewStateError(fmt.Sprintf(
				"Cannot create table '%s' with compact storage and static columns '%s'",
				o.create.tableName, formatNames(o.create.staticColumns.names)))
		}
		options = append(options, "COMPACT STORAGE")
	}

	if len(options) == 0 {
		return statement, nil
	}
	return statement + " WITH " + strings.Join(options, " AND "), nil
}
