package schemabuilder

import (
	"fmt"
	"strconv"
)

// Caching is a table caching strategy for Cassandra 2.0.x, or the key cache
// type of the combined 2.1.x caching option.
type Caching struct {
	name  string
	value string
}

var (
	CachingAll      = Caching{"ALL", "'all'"}
	CachingKeysOnly = Caching{"KEYS_ONLY", "'keys_only'"}
	CachingRowsOnly = Caching{"ROWS_ONLY", "'rows_only'"}
	CachingNone     = Caching{"NONE", "'none'"}
)

// CachingRowsPerPartition is the number of rows cached per partition when
// row caching is enabled (Cassandra 2.1.x). Create instances with NoRows,
// AllRows or Rows.
type CachingRowsPerPartition struct {
	value string
	err   error
}

// SpeculativeRetryValue is a speculative retry policy descriptor. Create
// instances with NoSpeculativeRetry, AlwaysRetry, Percentile or Millisecs.
type SpeculativeRetryValue struct {
	value string
	err   error
}

type rawOption struct {
	key   string
	value string
}

// tableOptions aggregates the per-table options shared by CREATE TABLE and
// ALTER TABLE. Named options render in a fixed canonical order; free-form
// options follow in insertion order.
type tableOptions struct {
	caching                 *Caching
	cachingRowsPerPartition *CachingRowsPerPartition
	bloomFilterFPChance     *float64
	comment                 *string
	compression             *CompressionOptions
	compaction              CompactionStrategy
	dcLocalReadRepairChance *float64
	defaultTTL              *int
	gcGraceSeconds          *int64
	indexInterval           *int
	minIndexInterval        *int
	maxIndexInterval        *int
	memtableFlushPeriodInMs *int64
	populateIOCacheOnFlush  *bool
	readRepairChance        *float64
	replicateOnWrite        *bool
	speculativeRetry        *SpeculativeRetryValue
	customOptions           []rawOption
	err                     error
}

func (o *tableOptions) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func (o *tableOptions) setCaching(caching Caching) {
	o.caching = &caching
}

func (o *tableOptions) setCachingRows(keys Caching, rowsPerPartition CachingRowsPerPartition) {
	if rowsPerPartition.err != nil {
		o.fail(rowsPerPartition.err)
		return
	}
	o.caching = &keys
	o.cachingRowsPerPartition = &rowsPerPartition
}

func (o *tableOptions) setBloomFilterFPChance(fpChance float64) {
	if err := validateRateValue(fpChance, "Bloom filter false positive chance"); err != nil {
		o.fail(err)
		return
	}
	o.bloomFilterFPChance = &fpChance
}

func (o *tableOptions) setComment(comment string) {
	o.comment = &comment
}

func (o *tableOptions) setCompression(compression *CompressionOptions) {
	o.compression = compression
}

func (o *tableOptions) setCompaction(compaction CompactionStrategy) {
	o.compaction = compaction
}

func (o *tableOptions) setDcLocalReadRepairChance(chance float64) {
	if err := validateRateValue(chance, "DC local read repair chance"); err != nil {
		o.fail(err)
		return
	}
	o.dcLocalReadRepairChance = &chance
}

func (o *tableOptions) setDefaultTimeToLive(ttl int) {
	o.defaultTTL = &ttl
}

func (o *tableOptions) setGcGraceSeconds(seconds int64) {
	o.gcGraceSeconds = &seconds
}

func (o *tableOptions) setIndexInterval(interval int) {
	o.indexInterval = &interval
}

func (o *tableOptions) setMinIndexInterval(interval int) {
	o.minIndexInterval = &interval
}

func (o *tableOptions) setMaxIndexInterval(interval int) {
	o.maxIndexInterval = &interval
}

func (o *tableOptions) setMemtableFlushPeriodInMillis(millis int64) {
	o.memtableFlushPeriodInMs = &millis
}

func (o *tableOptions) setPopulateIOCacheOnFlush(populate bool) {
	o.populateIOCacheOnFlush = &populate
}

func (o *tableOptions) setReadRepairChance(chance float64) {
	if err := validateRateValue(chance, "Read repair chance"); err != nil {
		o.fail(err)
		return
	}
	o.readRepairChance = &chance
}

func (o *tableOptions) setReplicateOnWrite(replicate bool) {
	o.replicateOnWrite = &replicate
}

func (o *tableOptions) setSpeculativeRetry(retry SpeculativeRetryValue) {
	if retry.err != nil {
		o.fail(retry.err)
		return
	}
	o.speculativeRetry = &retry
}

// setFreeformOption records a raw key/value pair appended after all named
// options. String values are single-quoted, everything else is rendered as
// is. Values are deliberately not validated.
func (o *tableOptions) setFreeformOption(key string, value interface{}) {
	if err := validateNotEmpty(key, "Key for custom option"); err != nil {
		o.fail(err)
		return
	}
	rendered := ""
	if s, ok := value.(string); ok {
		rendered = "'" + s + "'"
	} else {
		rendered = fmt.Sprintf("%v", value)
	}
	o.customOptions = append(o.customOptions, rawOption{key, rendered})
}

// configurationError reports the first argument error recorded on this
// option set, including errors carried by the compression and compaction
// values it holds.
func (o *tableOptions) configurationError() error {
	if o.err != nil {
		return o.err
	}
	if o.compression != nil && o.compression.err != nil {
		return o.compression.err
	}
	if o.compaction != nil {
		if err := o.compaction.configurationError(); err != nil {
			return err
		}
	}
	return nil
}

// renderCommon assembles the named options in canonical order followed by
// the free-form options.
func (o *tableOptions) renderCommon() ([]string, error) {
	if o.err != nil {
		return nil, o.err
	}

	options := make([]string, 0)

	caching, err := o.renderCaching()
	if err != nil {
		return nil, err
	}
	if caching != "" {
		options = append(options, caching)
	}

	if o.bloomFilterFPChance != nil {
		options = append(options, "bloom_filter_fp_chance = "+formatFloat(*o.bloomFilterFPChance))
	}
	if o.comment != nil {
		options = append(options, "comment = '"+*o.comment+"'")
	}
	if o.compression != nil {
		rendered, err := o.compression.render()
		if err != nil {
			return nil, err
		}
		options = append(options, "compression = "+rendered)
	}
	if o.compaction != nil {
		rendered, err := o.compaction.render()
		if err != nil {
			return nil, err
		}
		options = append(options, "compaction = "+rendered)
	}
	if o.dcLocalReadRepairChance != nil {
		options = append(options, "dclocal_read_repair_chance = "+formatFloat(*o.dcLocalReadRepairChance))
	}
	if o.defaultTTL != nil {
		options = append(options, "default_time_to_live = "+strconv.Itoa(*o.defaultTTL))
	}
	if o.gcGraceSeconds != nil {
		options = append(options, "gc_grace_seconds = "+strconv.FormatInt(*o.gcGraceSeconds, 10))
	}
	if o.indexInterval != nil {
		options = append(options, "index_interval = "+strconv.Itoa(*o.indexInterval))
	}
	if o.minIndexInterval != nil {
		options = append(options, "min_index_interval = "+strconv.Itoa(*o.minIndexInterval))
	}
	if o.maxIndexInterval != nil {
		options = append(options, "max_index_interval = "+strconv.Itoa(*o.maxIndexInterval))
	}
	if o.memtableFlushPeriodInMs != nil {
		options = append(options, "memtable_flush_period_in_ms = "+strconv.FormatInt(*o.memtableFlushPeriodInMs, 10))
	}
	if o.populateIOCacheOnFlush != nil {
		options = append(options, "populate_io_cache_on_flush = "+strconv.FormatBool(*o.populateIOCacheOnFlush))
	}
	if o.readRepairChance != nil {
		options = append(options, "read_repair_chance = "+formatFloat(*o.readRepairChance))
	}
	if o.replicateOnWrite != nil {
		options = append(options, "replicate_on_write = "+strconv.FormatBool(*o.replicateOnWrite))
	}
	if o.speculativeRetry != nil {
		options = append(options, "speculative_retry = "+o.speculativeRetry.value)
	}

	for _, custom := range o.customOptions {
		options = append(options, custom.key+" = "+custom.value)
	}

	return options, nil
}

// renderCaching handles the 2.0.x single-value form and the 2.1.x combined
// form. A rows-per-partition value is only permitted with the ALL or NONE
// key cache types.
func (o *tableOptions) renderCaching() (string, error) {
	if o.caching == nil {
		return "", nil
	}
	if o.cachingRowsPerPartition == nil {
		return "caching = " + o.caching.value, nil
	}
	if *o.caching != CachingAll && *o.caching != CachingNone {
		return "", NewStateError(fmt.Sprintf(
			"Cannot use caching type %s with the option 'rows_per_partition', use ALL or NONE as caching type",
			o.caching.name))
	}
	return "caching = {'keys' : " + o.caching.value +
		", 'rows_per_partition' : " + o.cachingRowsPerPartition.value + "}", nil
}
