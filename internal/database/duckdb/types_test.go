package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joacominatel/dbmeta/internal/database"
)

func TestTypeCode(t *testing.T) {
	tests := map[string]int{
		"INTEGER":                  database.TypeInteger,
		"VARCHAR":                  database.TypeVarchar,
		"DECIMAL(18,3)":            database.TypeDecimal,
		"TIMESTAMP WITH TIME ZONE": database.TypeTimestampWithTimezone,
		"INTEGER[]":                database.TypeArray,
		"VARCHAR[3]":               database.TypeArray,
		"STRUCT(a INTEGER)":        database.TypeStruct,
		"MAP(VARCHAR, INTEGER)":    database.TypeStruct,
		"UUID":                     database.TypeOther,
		"boolean":                  database.TypeBoolean,
	}

	for dataType, want := range tests {
		assert.Equal(t, want, TypeCode(dataType), dataType)
	}
}
