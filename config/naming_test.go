package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCaseNaming(t *testing.T) {
	nc := NewSnakeCaseNaming()
	assert.NotNil(t, nc)
	assert.Equal(t, "tbl_a", nc.ToCQLTable("TblA"))
	assert.Equal(t, "tbl_a", nc.ToCQLTable("tblA"))
	assert.Equal(t, "a_column", nc.ToCQLColumn("aColumn"))
	assert.Equal(t, "a_column", nc.ToCQLColumn("a_column"))
	assert.Equal(t, "address_type", nc.ToCQLType("AddressType"))
}

func TestVerbatimNaming(t *testing.T) {
	nc := NewVerbatimNaming()
	assert.NotNil(t, nc)
	assert.Equal(t, "TblA", nc.ToCQLTable("TblA"))
	assert.Equal(t, "aColumn", nc.ToCQLColumn("aColumn"))
	assert.Equal(t, "AddressType", nc.ToCQLType("AddressType"))
}
