package sqlite

import (
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
)

var typeCodes = map[string]int{
	"BOOLEAN":          database.TypeBoolean,
	"BOOL":             database.TypeBoolean,
	"TINYINT":          database.TypeTinyInt,
	"SMALLINT":         database.TypeSmallInt,
	"INT":              database.TypeInteger,
	"INTEGER":          database.TypeInteger,
	"BIGINT":           database.TypeBigInt,
	"REAL":             database.TypeReal,
	"FLOAT":            database.TypeFloat,
	"DOUBLE":           database.TypeDouble,
	"DOUBLE PRECISION": database.TypeDouble,
	"NUMERIC":          database.TypeNumeric,
	"DECIMAL":          database.TypeDecimal,
	"CHAR":             database.TypeChar,
	"CHARACTER":        database.TypeChar,
	"VARCHAR":          database.TypeVarchar,
	"TEXT":             database.TypeVarchar,
	"CLOB":             database.TypeClob,
	"BLOB":             database.TypeBlob,
	"DATE":             database.TypeDate,
	"TIME":             database.TypeTime,
	"DATETIME":         database.TypeTimestamp,
	"TIMESTAMP":        database.TypeTimestamp,
}

// TypeCode maps a declared column type to a standard SQL type code.
// Well-known names map directly; anything else follows SQLite's column
// affinity rules.
func TypeCode(declared string) int {
	t := strings.ToUpper(strings.TrimSpace(declared))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if code, ok := typeCodes[t]; ok {
		return code
	}

	switch {
	case strings.Contains(t, "INT"):
		return database.TypeInteger
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return database.TypeVarchar
	case t == "", strings.Contains(t, "BLOB"):
		return database.TypeBlob
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return database.TypeReal
	default:
		return database.TypeNumeric
	}
}
