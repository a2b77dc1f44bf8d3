package schemabuilder

import (
	"testing"

	"github.com/datastax/cassandra-schema-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func baseCreate() *Create {
	return CreateTable("test").
		AddPartitionKey("id", TypeInt).
		AddClusteringKey("c", TypeText)
}

func TestTableOptionsGeneration(t *testing.T) {
	prefix := "CREATE TABLE test (id int, c text, PRIMARY KEY (id, c)) WITH "

	items := []struct {
		name      string
		statement SchemaStatement
		options   string
	}{
		{"caching 2.0 style",
			baseCreate().WithOptions().Caching(CachingKeysOnly),
			"caching = 'keys_only'"},
		{"caching 2.1 style",
			baseCreate().WithOptions().CachingWithRowsPerPartition(CachingAll, Rows(10)),
			"caching = {'keys' : 'all', 'rows_per_partition' : 10}"},
		{"caching none with all rows",
			baseCreate().WithOptions().CachingWithRowsPerPartition(CachingNone, AllRows()),
			"caching = {'keys' : 'none', 'rows_per_partition' : ALL}"},
		{"bloom filter",
			baseCreate().WithOptions().BloomFilterFPChance(0.01),
			"bloom_filter_fp_chance = 0.01"},
		{"comment",
			baseCreate().WithOptions().Comment("a table"),
			"comment = 'a table'"},
		{"gc grace",
			baseCreate().WithOptions().GcGraceSeconds(864000),
			"gc_grace_seconds = 864000"},
		{"index intervals",
			baseCreate().WithOptions().IndexInterval(256).MinIndexInterval(128).MaxIndexInterval(2048),
			"index_interval = 256 AND min_index_interval = 128 AND max_index_interval = 2048"},
		{"flush period and io cache",
			baseCreate().WithOptions().MemtableFlushPeriodInMillis(3600000).PopulateIOCacheOnFlush(true),
			"memtable_flush_period_in_ms = 3600000 AND populate_io_cache_on_flush = true"},
		{"repair chances and ttl",
			baseCreate().WithOptions().DcLocalReadRepairChance(0.25).DefaultTimeToLive(86400).ReadRepairChance(0.05),
			"dclocal_read_repair_chance = 0.25 AND default_time_to_live = 86400 AND read_repair_chance = 0.05"},
		{"replicate on write",
			baseCreate().WithOptions().ReplicateOnWrite(true),
			"replicate_on_write = true"},
		{"speculative retry none",
			baseCreate().WithOptions().SpeculativeRetry(NoSpeculativeRetry()),
			"speculative_retry = 'NONE'"},
		{"speculative retry always",
			baseCreate().WithOptions().SpeculativeRetry(AlwaysRetry()),
			"speculative_retry = 'ALWAYS'"},
		{"speculative retry percentile",
			baseCreate().WithOptions().SpeculativeRetry(Percentile(95)),
			"speculative_retry = '95percentile'"},
		{"speculative retry delay",
			baseCreate().WithOptions().SpeculativeRetry(Millisecs(12)),
			"speculative_retry = '12ms'"},
		{"freeform string option quoted",
			baseCreate().WithOptions().FreeformOption("compaction_window_unit", "DAYS"),
			"compaction_window_unit = 'DAYS'"},
		{"freeform non-string option unquoted",
			baseCreate().WithOptions().FreeformOption("compaction_window_size", 7),
			"compaction_window_size = 7"},
		{"clustering order",
			baseCreate().WithOptions().ClusteringOrder(ColumnOrder{"c", Desc}),
			"CLUSTERING ORDER BY (c DESC)"},
		{"compact storage",
			baseCreate().WithOptions().CompactStorage(),
			"COMPACT STORAGE"},
	}

	for _, item := range items {
		built, err := item.statement.Build()
		assert.Nil(t, err, item.name)
		expected := prefix + item.options
		if built != expected {
			t.Errorf("%s:\n%s", item.name, testutil.Diff(expected, built))
		}
	}
}

// Named options follow a fixed canonical order regardless of the order of
// the configuration calls; free-form options keep their insertion order at
// the end.
func TestTableOptionsCanonicalOrder(t *testing.T) {
	statement := baseCreate().WithOptions().
		ReadRepairChance(0.05).
		FreeformOption("second", 2).
		Comment("ordered").
		FreeformOption("first", "one").
		Caching(CachingAll).
		GcGraceSeconds(600)

	built, err := statement.Build()
	assert.Nil(t, err)
	expected := "CREATE TABLE test (id int, c text, PRIMARY KEY (id, c)) WITH " +
		"caching = 'all' AND comment = 'ordered' AND gc_grace_seconds = 600 AND " +
		"read_repair_chance = 0.05 AND second = 2 AND first = 'one'"
	if built != expected {
		t.Error(testutil.Diff(expected, built))
	}
}

func TestTableOptionsRangeValidation(t *testing.T) {
	items := []struct {
		name      string
		statement SchemaStatement
		message   string
	}{
		{"bloom filter out of range",
			baseCreate().WithOptions().BloomFilterFPChance(1.5),
			"Bloom filter false positive chance should be between 0 and 1"},
		{"read repair chance out of range",
			baseCreate().WithOptions().ReadRepairChance(-0.1),
			"Read repair chance should be between 0 and 1"},
		{"dc local read repair chance out of range",
			baseCreate().WithOptions().DcLocalReadRepairChance(1.01),
			"DC local read repair chance should be between 0 and 1"},
		{"percentile out of range",
			baseCreate().WithOptions().SpeculativeRetry(Percentile(101)),
			"Percentile value for speculative retry should be between 0 and 100"},
		{"negative retry delay",
			baseCreate().WithOptions().SpeculativeRetry(Millisecs(-1)),
			"Millisecond value for speculative retry should be positive"},
		{"non-positive cached rows",
			baseCreate().WithOptions().CachingWithRowsPerPartition(CachingAll, Rows(0)),
			"Rows number for caching should be strictly positive"},
		{"empty freeform key",
			baseCreate().WithOptions().FreeformOption("", 1),
			"Key for custom option should not be null or blank"},
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

// An argument error recorded on the builder or on its options is returned
// even when the base statement would also fail its state validation.
func TestTableOptionsArgumentErrorBeforeStateValidation(t *testing.T) {
	items := []struct {
		name      string
		statement SchemaStatement
		message   string
	}{
		{"option error on table without partition key",
			CreateTable("test").AddColumn("c", TypeInt).WithOptions().BloomFilterFPChance(1.5),
			"Bloom filter false positive chance should be between 0 and 1"},
		{"compression error on table without partition key",
			CreateTable("test").AddColumn("c", TypeInt).WithOptions().
				Compression(LZ4().WithCRCCheckChance(1.5)),
			"CRC check chance should be between 0 and 1"},
		{"compaction error on table without partition key",
			CreateTable("test").AddColumn("c", TypeInt).WithOptions().
				Compaction(SizeTieredStrategy().TombstoneThreshold(2)),
			"Tombstone threshold should be between 0 and 1"},
		{"column error on table without partition key",
			CreateTable("test").AddColumn("select", TypeInt).WithOptions().Comment("x"),
			"The column name 'select' is not allowed because it is a reserved keyword"},
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

func TestTableOptionsStateValidation(t *testing.T) {
	t.Run("rows per partition requires ALL or NONE", func(t *testing.T) {
		statement := baseCreate().WithOptions().
			CachingWithRowsPerPartition(CachingKeysOnly, Rows(10))

		built, err := statement.Build()
		assert.Empty(t, built)
		if assert.Error(t, err) {
			assert.IsType(t, &StateError{}, err)
			assert.Equal(t,
				"Cannot use caching type KEYS_ONLY with the option 'rows_per_partition', use ALL or NONE as caching type",
				err.Error())
		}
	})

	t.Run("compact storage excludes static columns", func(t *testing.T) {
		statement := baseCreate().
			AddStaticColumn("s", TypeText).
			WithOptions().
			CompactStorage()

		built, err := statement.Build()
		assert.Empty(t, built)
		if assert.Error(t, err) {
			assert.IsType(t, &StateError{}, err)
			assert.Equal(t,
				"Cannot create table 'test' with compact storage and static columns '[s]'",
				err.Error())
		}
	})
}

func TestClusteringOrderValidation(t *testing.T) {
	t.Run("unknown clustering column", func(t *testing.T) {
		statement := baseCreate().WithOptions().
			ClusteringOrder(ColumnOrder{"missing", Asc})

		_, err := statement.Build()
		if assert.Error(t, err) {
			assert.IsType(t, &ConfigurationError{}, err)
			assert.Equal(t, "Clustering key 'missing' is unknown. Did you forget to declare it first ?", err.Error())
		}
	})

	t.Run("empty order list", func(t *testing.T) {
		statement := baseCreate().WithOptions().ClusteringOrder()

		_, err := statement.Build()
		if assert.Error(t, err) {
			assert.Equal(t, "Cannot create table 'test' with null or empty clustering order keys", err.Error())
		}
	})

	t.Run("multiple orders", func(t *testing.T) {
		statement := CreateTable("test").
			AddPartitionKey("id", TypeInt).
			AddClusteringKey("a", TypeInt).
			AddClusteringKey("b", TypeText).
			WithOptions().
			ClusteringOrder(ColumnOrder{"a", Asc}, ColumnOrder{"b", Desc})

		built, err := statement.Build()
		assert.Nil(t, err)
		assert.Equal(t,
			"CREATE TABLE test (id int, a int, b text, PRIMARY KEY (id, a, b)) "+
				"WITH CLUSTERING ORDER BY (a ASC, b DESC)",
			built)
	})
}

func TestTableOptionsWithoutSettingsRendersBareStatement(t *testing.T) {
	built, err := baseCreate().WithOptions().Build()
	assert.Nil(t, err)
	assert.Equal(t, "CREATE TABLE test (id int, c text, PRIMARY KEY (id, c))", built)
}
