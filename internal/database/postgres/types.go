package postgres

import (
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
)

var typeCodes = map[string]int{
	"int2":        database.TypeSmallInt,
	"int4":        database.TypeInteger,
	"oid":         database.TypeBigInt,
	"int8":        database.TypeBigInt,
	"money":       database.TypeDouble,
	"numeric":     database.TypeNumeric,
	"float4":      database.TypeReal,
	"float8":      database.TypeDouble,
	"char":        database.TypeChar,
	"bpchar":      database.TypeChar,
	"varchar":     database.TypeVarchar,
	"text":        database.TypeVarchar,
	"name":        database.TypeVarchar,
	"bytea":       database.TypeBinary,
	"bool":        database.TypeBit,
	"bit":         database.TypeBit,
	"date":        database.TypeDate,
	"time":        database.TypeTime,
	"timetz":      database.TypeTime,
	"timestamp":   database.TypeTimestamp,
	"timestamptz": database.TypeTimestamp,
	"refcursor":   database.TypeRefCursor,
	"xml":         database.TypeSQLXML,
}

// TypeCode maps a PostgreSQL udt_name to a standard SQL type code.
// Array types (udt_name prefixed with "_") map to TypeArray; everything
// else unknown maps to TypeOther.
func TypeCode(udtName string) int {
	name := strings.ToLower(udtName)
	if code, ok := typeCodes[name]; ok {
		return code
	}
	if strings.HasPrefix(name, "_") {
		return database.TypeArray
	}
	return database.TypeOther
}
