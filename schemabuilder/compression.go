package schemabuilder

import (
	"strconv"
	"strings"
)

// CompressionOptions renders the compression map literal of a CREATE or
// ALTER TABLE statement. Create instances with NoCompression, LZ4, Snappy or
// Deflate.
type CompressionOptions struct {
	algorithm string
	none      bool
	// On the NONE algorithm, the tunables are ignored rather than rejected.
	chunkLengthInKb *int
	crcCheckChance  *float64
	err             error
}

func newCompressionOptions(algorithm string) *CompressionOptions {
	return &CompressionOptions{algorithm: algorithm, none: algorithm == ""}
}

// WithChunkLengthInKb sets the size in KB of the on-disk blocks SSTables are
// compressed by.
func (c *CompressionOptions) WithChunkLengthInKb(chunkLengthInKb int) *CompressionOptions {
	if c.none {
		return c
	}
	c.chunkLengthInKb = &chunkLengthInKb
	return c
}

// WithCRCCheckChance sets the probability with which block checksums are
// verified during reads. The value must be between 0 and 1.
func (c *CompressionOptions) WithCRCCheckChance(crcCheckChance float64) *CompressionOptions {
	if c.none {
		return c
	}
	if err := validateRateValue(crcCheckChance, "CRC check chance"); err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}
	c.crcCheckChance = &crcCheckChance
	return c
}

func (c *CompressionOptions) render() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	entries := []string{"'sstable_compression' : '" + c.algorithm + "'"}
	if c.chunkLengthInKb != nil {
		entries = append(entries, "'chunk_length_kb' : "+strconv.Itoa(*c.chunkLengthInKb))
	}
	if c.crcCheckChance != nil {
		entries = append(entries, "'crc_check_chance' : "+formatFloat(*c.crcCheckChance))
	}
	return "{" + strings.Join(entries, ", ") + "}", nil
}
