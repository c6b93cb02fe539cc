package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joacominatel/dbmeta/internal/database"
)

func TestTypeCode(t *testing.T) {
	tests := []struct {
		dataType, columnType string
		want                 int
	}{
		{"varchar", "varchar(255)", database.TypeVarchar},
		{"INT", "int(11) unsigned", database.TypeInteger},
		{"bigint", "bigint(20)", database.TypeBigInt},
		{"tinyint", "tinyint(1)", database.TypeBit},
		{"tinyint", "tinyint(4)", database.TypeTinyInt},
		{"decimal", "decimal(10,2)", database.TypeDecimal},
		{"text", "text", database.TypeLongVarchar},
		{"datetime", "datetime(6)", database.TypeTimestamp},
		{"longblob", "longblob", database.TypeLongVarbinary},
		{"enum", "enum('a','b')", database.TypeChar},
		{"point", "point", database.TypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeCode(tt.dataType, tt.columnType), tt.columnType)
	}
}

func TestIdentifierCase(t *testing.T) {
	assert.Equal(t, database.IdentifierMixed, identifierCase(0))
	assert.Equal(t, database.IdentifierLower, identifierCase(1))
	assert.Equal(t, database.IdentifierMixed, identifierCase(2))
}

func TestDriver_NotConnected(t *testing.T) {
	d := New()
	_, err := d.MetaData(t.Context())
	assert.ErrorIs(t, err, database.ErrNotConnected)
	_, err = d.ListSchemas(t.Context())
	assert.ErrorIs(t, err, database.ErrNotConnected)
	assert.NoError(t, d.Close())
}

func TestDriver_ConnectRejectsBadDSN(t *testing.T) {
	err := New().Connect(t.Context(), "not a dsn at all")
	assert.Error(t, err)
}
