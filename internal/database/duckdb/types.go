package duckdb

import (
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
)

var typeCodes = map[string]int{
	"BOOLEAN":                  database.TypeBoolean,
	"TINYINT":                  database.TypeTinyInt,
	"SMALLINT":                 database.TypeSmallInt,
	"INTEGER":                  database.TypeInteger,
	"BIGINT":                   database.TypeBigInt,
	"HUGEINT":                  database.TypeNumeric,
	"UTINYINT":                 database.TypeSmallInt,
	"USMALLINT":                database.TypeInteger,
	"UINTEGER":                 database.TypeBigInt,
	"UBIGINT":                  database.TypeNumeric,
	"FLOAT":                    database.TypeFloat,
	"DOUBLE":                   database.TypeDouble,
	"DECIMAL":                  database.TypeDecimal,
	"VARCHAR":                  database.TypeVarchar,
	"BLOB":                     database.TypeBlob,
	"DATE":                     database.TypeDate,
	"TIME":                     database.TypeTime,
	"TIME WITH TIME ZONE":      database.TypeTimeWithTimezone,
	"TIMESTAMP":                database.TypeTimestamp,
	"TIMESTAMP_S":              database.TypeTimestamp,
	"TIMESTAMP_MS":             database.TypeTimestamp,
	"TIMESTAMP_NS":             database.TypeTimestamp,
	"TIMESTAMP WITH TIME ZONE": database.TypeTimestampWithTimezone,
	"BIT":                      database.TypeBit,
}

// TypeCode maps a duckdb_columns data_type to a standard SQL type code.
func TypeCode(dataType string) int {
	t := strings.ToUpper(strings.TrimSpace(dataType))
	switch {
	case strings.HasSuffix(t, "]"):
		return database.TypeArray
	case strings.HasPrefix(t, "STRUCT"), strings.HasPrefix(t, "MAP"), strings.HasPrefix(t, "UNION"):
		return database.TypeStruct
	}
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if code, ok := typeCodes[t]; ok {
		return code
	}
	return database.TypeOther
}
