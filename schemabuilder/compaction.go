package schemabuilder

import (
	"strconv"
	"strings"
)

// CompactionStrategy renders the compaction map literal of a CREATE or ALTER
// TABLE statement. The closed set of implementations is
// SizeTieredCompactionStrategy, LeveledCompactionStrategy and
// DateTieredCompactionStrategy.
type CompactionStrategy interface {
	render() (string, error)
	configurationError() error
}

// TimestampResolution is the unit of the write timestamps stored in the
// table, used by the date-tiered strategy.
type TimestampResolution string

const (
	Microseconds TimestampResolution = "MICROSECONDS"
	Milliseconds TimestampResolution = "MILLISECONDS"
)

// compactionOptions carries the tunables shared by every strategy.
type compactionOptions struct {
	strategyClass                string
	enabled                      *bool
	tombstoneCompactionInterval  *int
	tombstoneThreshold           *float64
	uncheckedTombstoneCompaction *bool
	err                          error
}

func (c *compactionOptions) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *compactionOptions) configurationError() error {
	return c.err
}

func (c *compactionOptions) setTombstoneThreshold(threshold float64) {
	if err := validateRateValue(threshold, "Tombstone threshold"); err != nil {
		c.fail(err)
		return
	}
	c.tombstoneThreshold = &threshold
}

func (c *compactionOptions) commonEntries() []string {
	entries := []string{"'class' : '" + c.strategyClass + "'"}
	if c.enabled != nil {
		entries = append(entries, "'enabled' : "+strconv.FormatBool(*c.enabled))
	}
	if c.tombstoneCompactionInterval != nil {
		entries = append(entries, "'tombstone_compaction_interval' : "+strconv.Itoa(*c.tombstoneCompactionInterval))
	}
	if c.tombstoneThreshold != nil {
		entries = append(entries, "'tombstone_threshold' : "+formatFloat(*c.tombstoneThreshold))
	}
	if c.uncheckedTombstoneCompaction != nil {
		entries = append(entries, "'unchecked_tombstone_compaction' : "+strconv.FormatBool(*c.uncheckedTombstoneCompaction))
	}
	return entries
}

func renderCompactionMap(entries []string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return "{" + strings.Join(entries, ", ") + "}", nil
}

// SizeTieredCompactionStrategy holds the tunables of the size-tiered
// compaction strategy. Create instances with SizeTieredStrategy.
type SizeTieredCompactionStrategy struct {
	compactionOptions
	bucketHigh      *float64
	bucketLow       *float64
	coldReadsToOmit *float64
	minThreshold    *int
	maxThreshold    *int
	minSSTableSize  *int64
}

func (s *SizeTieredCompactionStrategy) EnableBackgroundCompaction(enabled bool) *SizeTieredCompactionStrategy {
	s.enabled = &enabled
	return s
}

func (s *SizeTieredCompactionStrategy) TombstoneCompactionIntervalInDay(days int) *SizeTieredCompactionStrategy {
	s.tombstoneCompactionInterval = &days
	return s
}

func (s *SizeTieredCompactionStrategy) TombstoneThreshold(threshold float64) *SizeTieredCompactionStrategy {
	s.setTombstoneThreshold(threshold)
	return s
}

func (s *SizeTieredCompactionStrategy) UncheckedTombstoneCompaction(unchecked bool) *SizeTieredCompactionStrategy {
	s.uncheckedTombstoneCompaction = &unchecked
	return s
}

func (s *SizeTieredCompactionStrategy) BucketHigh(bucketHigh float64) *SizeTieredCompactionStrategy {
	s.bucketHigh = &bucketHigh
	return s
}

func (s *SizeTieredCompactionStrategy) BucketLow(bucketLow float64) *SizeTieredCompactionStrategy {
	s.bucketLow = &bucketLow
	return s
}

func (s *SizeTieredCompactionStrategy) ColdReadsRatioToOmit(ratio float64) *SizeTieredCompactionStrategy {
	if err := validateRateValue(ratio, "Cold reads ratio to omit"); err != nil {
		s.fail(err)
		return s
	}
	s.coldReadsToOmit = &ratio
	return s
}

func (s *SizeTieredCompactionStrategy) MinThreshold(minThreshold int) *SizeTieredCompactionStrategy {
	s.minThreshold = &minThreshold
	return s
}

func (s *SizeTieredCompactionStrategy) MaxThreshold(maxThreshold int) *SizeTieredCompactionStrategy {
	s.maxThreshold = &maxThreshold
	return s
}

func (s *SizeTieredCompactionStrategy) MinSSTableSizeInBytes(size int64) *SizeTieredCompactionStrategy {
	s.minSSTableSize = &size
	return s
}

func (s *SizeTieredCompactionStrategy) render() (string, error) {
	entries := s.commonEntries()
	if s.bucketHigh != nil {
		entries = append(entries, "'bucket_high' : "+formatFloat(*s.bucketHigh))
	}
	if s.bucketLow != nil {
		entries = append(entries, "'bucket_low' : "+formatFloat(*s.bucketLow))
	}
	if s.coldReadsToOmit != nil {
		entries = append(entries, "'cold_reads_to_omit' : "+formatFloat(*s.coldReadsToOmit))
	}
	if s.minThreshold != nil {
		entries = append(entries, "'min_threshold' : "+strconv.Itoa(*s.minThreshold))
	}
	if s.maxThreshold != nil {
		entries = append(entries, "'max_threshold' : "+strconv.Itoa(*s.maxThreshold))
	}
	if s.minSSTableSize != nil {
		entries = append(entries, "'min_sstable_size' : "+strconv.FormatInt(*s.minSSTableSize, 10))
	}
	return renderCompactionMap(entries, s.err)
}

// LeveledCompactionStrategy holds the tunables of the leveled compaction
// strategy. Create instances with LeveledStrategy.
type LeveledCompactionStrategy struct {
	compactionOptions
	ssTableSizeInMB *int
}

func (s *LeveledCompactionStrategy) EnableBackgroundCompaction(enabled bool) *LeveledCompactionStrategy {
	s.enabled = &enabled
	return s
}

func (s *LeveledCompactionStrategy) TombstoneCompactionIntervalInDay(days int) *LeveledCompactionStrategy {
	s.tombstoneCompactionInterval = &days
	return s
}

func (s *LeveledCompactionStrategy) TombstoneThreshold(threshold float64) *LeveledCompactionStrategy {
	s.setTombstoneThreshold(threshold)
	return s
}

func (s *LeveledCompactionStrategy) UncheckedTombstoneCompaction(unchecked bool) *LeveledCompactionStrategy {
	s.uncheckedTombstoneCompaction = &unchecked
	return s
}

func (s *LeveledCompactionStrategy) SSTableSizeInMB(sizeInMB int) *LeveledCompactionStrategy {
	s.ssTableSizeInMB = &sizeInMB
	return s
}

func (s *LeveledCompactionStrategy) render() (string, error) {
	entries := s.commonEntries()
	if s.ssTableSizeInMB != nil {
		entries = append(entries, "'sstable_size_in_mb' : "+strconv.Itoa(*s.ssTableSizeInMB))
	}
	return renderCompactionMap(entries, s.err)
}

// DateTieredCompactionStrategy holds the tunables of the date-tiered
// compaction strategy. Create instances with DateTieredStrategy.
type DateTieredCompactionStrategy struct {
	compactionOptions
	baseTimeSeconds     *int
	maxSSTableAgeDays   *int
	minThreshold        *int
	maxThreshold        *int
	minSSTableSize      *int64
	timestampResolution *TimestampResolution
}

func (s *DateTieredCompactionStrategy) EnableBackgroundCompaction(enabled bool) *DateTieredCompactionStrategy {
	s.enabled = &enabled
	return s
}

func (s *DateTieredCompactionStrategy) TombstoneCompactionIntervalInDay(days int) *DateTieredCompactionStrategy {
	s.tombstoneCompactionInterval = &days
	return s
}

func (s *DateTieredCompactionStrategy) TombstoneThreshold(threshold float64) *DateTieredCompactionStrategy {
	s.setTombstoneThreshold(threshold)
	return s
}

func (s *DateTieredCompactionStrategy) UncheckedTombstoneCompaction(unchecked bool) *DateTieredCompactionStrategy {
	s.uncheckedTombstoneCompaction = &unchecked
	return s
}

func (s *DateTieredCompactionStrategy) BaseTimeSeconds(baseTimeSeconds int) *DateTieredCompactionStrategy {
	s.baseTimeSeconds = &baseTimeSeconds
	return s
}

func (s *DateTieredCompactionStrategy) MaxSSTableAgeDays(days int) *DateTieredCompactionStrategy {
	s.maxSSTableAgeDays = &days
	return s
}

func (s *DateTieredCompactionStrategy) MinThreshold(minThreshold int) *DateTieredCompactionStrategy {
	s.minThreshold = &minThreshold
	return s
}

func (s *DateTieredCompactionStrategy) MaxThreshold(maxThreshold int) *DateTieredCompactionStrategy {
	s.maxThreshold = &maxThreshold
	return s
}

func (s *DateTieredCompactionStrategy) MinSSTableSizeInBytes(size int64) *DateTieredCompactionStrategy {
	s.minSSTableSize = &size
	return s
}

func (s *DateTieredCompactionStrategy) TimestampResolution(resolution TimestampResolution) *DateTieredCompactionStrategy {
	s.timestampResolution = &resolution
	return s
}

func (s *DateTieredCompactionStrategy) render() (string, error) {
	entries := s.commonEntries()
	if s.baseTimeSeconds != nil {
		entries = append(entries, "'base_time_seconds' : "+strconv.Itoa(*s.baseTimeSeconds))
	}
	if s.maxSSTableAgeDays != nil {
		entries = append(entries, "'max_sstable_age_days' : "+strconv.Itoa(*s.maxSSTableAgeDays))
	}
	if s.minThreshold != nil {
		entries = append(entries, "'min_threshold' : "+strconv.Itoa(*s.minThreshold))
	}
	if s.maxThreshold != nil {
		entries = append(entries, "'max_threshold' : "+strconv.Itoa(*s.maxThreshold))
	}
	if s.minSSTableSize != nil {
		entries = append(entries, "'min_sstable_size' : "+strconv.FormatInt(*s.minSSTableSize, 10))
	}
	if s.timestampResolution != nil {
		entries = append(entries, "'timestamp_resolution' : '"+string(*s.timestampResolution)+"'")
	}
	return renderCompactionMap(entries, s.err)
}
