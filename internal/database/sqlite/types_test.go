package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joacominatel/dbmeta/internal/database"
)

func TestTypeCode(t *testing.T) {
	tests := map[string]int{
		"INTEGER":          database.TypeInteger,
		"varchar(255)":     database.TypeVarchar,
		"NVARCHAR(20)":     database.TypeVarchar,
		"text":             database.TypeVarchar,
		"BIGINT":           database.TypeBigInt,
		"UNSIGNED BIG INT": database.TypeInteger,
		"DECIMAL(10, 2)":   database.TypeDecimal,
		"datetime":         database.TypeTimestamp,
		"BOOLEAN":          database.TypeBoolean,
		"":                 database.TypeBlob,
		"DOUBLE":           database.TypeDouble,
		"FLOATING":         database.TypeReal,
		"MONEY":            database.TypeNumeric,
	}

	for declared, want := range tests {
		assert.Equal(t, want, TypeCode(declared), declared)
	}
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "shop", databaseName("/tmp/data/shop.db"))
	assert.Equal(t, "shop", databaseName("file:shop.sqlite?mode=ro"))
	assert.Equal(t, "memory", databaseName(":memory:"))
}
