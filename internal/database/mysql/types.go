package mysql

import (
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
)

var typeCodes = map[string]int{
	"bit":        database.TypeBit,
	"tinyint":    database.TypeTinyInt,
	"smallint":   database.TypeSmallInt,
	"mediumint":  database.TypeInteger,
	"int":        database.TypeInteger,
	"integer":    database.TypeInteger,
	"bigint":     database.TypeBigInt,
	"float":      database.TypeReal,
	"double":     database.TypeDouble,
	"decimal":    database.TypeDecimal,
	"char":       database.TypeChar,
	"varchar":    database.TypeVarchar,
	"tinytext":   database.TypeVarchar,
	"text":       database.TypeLongVarchar,
	"mediumtext": database.TypeLongVarchar,
	"longtext":   database.TypeLongVarchar,
	"json":       database.TypeLongVarchar,
	"enum":       database.TypeChar,
	"set":        database.TypeChar,
	"binary":     database.TypeBinary,
	"varbinary":  database.TypeVarbinary,
	"tinyblob":   database.TypeVarbinary,
	"blob":       database.TypeLongVarbinary,
	"mediumblob": database.TypeLongVarbinary,
	"longblob":   database.TypeLongVarbinary,
	"geometry":   database.TypeBinary,
	"date":       database.TypeDate,
	"year":       database.TypeDate,
	"time":       database.TypeTime,
	"datetime":   database.TypeTimestamp,
	"timestamp":  database.TypeTimestamp,
}

// TypeCode maps INFORMATION_SCHEMA.COLUMNS DATA_TYPE and COLUMN_TYPE to a
// standard SQL type code. TINYINT(1) is reported as BIT.
func TypeCode(dataType, columnType string) int {
	dt := strings.ToLower(dataType)
	if dt == "tinyint" && strings.HasPrefix(strings.ToLower(columnType), "tinyint(1)") {
		return database.TypeBit
	}
	if code, ok := typeCodes[dt]; ok {
		return code
	}
	return database.TypeOther
}
