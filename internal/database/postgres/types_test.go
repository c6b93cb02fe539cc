package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joacominatel/dbmeta/internal/database"
)

func TestTypeCode(t *testing.T) {
	tests := map[string]int{
		"int4":        database.TypeInteger,
		"INT8":        database.TypeBigInt,
		"varchar":     database.TypeVarchar,
		"text":        database.TypeVarchar,
		"bpchar":      database.TypeChar,
		"bool":        database.TypeBit,
		"numeric":     database.TypeNumeric,
		"timestamptz": database.TypeTimestamp,
		"date":        database.TypeDate,
		"_int4":       database.TypeArray,
		"_text":       database.TypeArray,
		"jsonb":       database.TypeOther,
		"uuid":        database.TypeOther,
	}

	for udt, want := range tests {
		assert.Equal(t, want, TypeCode(udt), udt)
	}
}

func TestMetaData_IdentifierCase(t *testing.T) {
	md := &MetaData{}
	assert.Equal(t, database.IdentifierLower, md.IdentifierCase())
}

func TestDriver_NotConnected(t *testing.T) {
	d := New()
	_, err := d.MetaData(t.Context())
	assert.ErrorIs(t, err, database.ErrNotConnected)
	assert.ErrorIs(t, d.Ping(t.Context()), database.ErrNotConnected)
	assert.NoError(t, d.Close())
}
