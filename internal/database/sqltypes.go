package database

// Standard SQL type codes, numbered as in the X/Open SQL CLI and ODBC
// type catalogs. DATA_TYPE values reported by every MetaData provider use
// these codes.
const (
	TypeBit                   = -7
	TypeTinyInt               = -6
	TypeSmallInt              = 5
	TypeInteger               = 4
	TypeBigInt                = -5
	TypeFloat                 = 6
	TypeReal                  = 7
	TypeDouble                = 8
	TypeNumeric               = 2
	TypeDecimal               = 3
	TypeChar                  = 1
	TypeVarchar               = 12
	TypeLongVarchar           = -1
	TypeDate                  = 91
	TypeTime                  = 92
	TypeTimestamp             = 93
	TypeBinary                = -2
	TypeVarbinary             = -3
	TypeLongVarbinary         = -4
	TypeNull                  = 0
	TypeOther                 = 1111
	TypeDistinct              = 2001
	TypeStruct                = 2002
	TypeArray                 = 2003
	TypeBlob                  = 2004
	TypeClob                  = 2005
	TypeRef                   = 2006
	TypeBoolean               = 16
	TypeNChar                 = -15
	TypeNVarchar              = -9
	TypeLongNVarchar          = -16
	TypeNClob                 = 2011
	TypeSQLXML                = 2009
	TypeRefCursor             = 2012
	TypeTimeWithTimezone      = 2013
	TypeTimestampWithTimezone = 2014
)

var typeNames = map[int]string{
	TypeBit:                   "BIT",
	TypeTinyInt:               "TINYINT",
	TypeSmallInt:              "SMALLINT",
	TypeInteger:               "INTEGER",
	TypeBigInt:                "BIGINT",
	TypeFloat:                 "FLOAT",
	TypeReal:                  "REAL",
	TypeDouble:                "DOUBLE",
	TypeNumeric:               "NUMERIC",
	TypeDecimal:               "DECIMAL",
	TypeChar:                  "CHAR",
	TypeVarchar:               "VARCHAR",
	TypeLongVarchar:           "LONGVARCHAR",
	TypeDate:                  "DATE",
	TypeTime:                  "TIME",
	TypeTimestamp:             "TIMESTAMP",
	TypeBinary:                "BINARY",
	TypeVarbinary:             "VARBINARY",
	TypeLongVarbinary:         "LONGVARBINARY",
	TypeNull:                  "NULL",
	TypeOther:                 "OTHER",
	TypeDistinct:              "DISTINCT",
	TypeStruct:                "STRUCT",
	TypeArray:                 "ARRAY",
	TypeBlob:                  "BLOB",
	TypeClob:                  "CLOB",
	TypeRef:                   "REF",
	TypeBoolean:               "BOOLEAN",
	TypeNChar:                 "NCHAR",
	TypeNVarchar:              "NVARCHAR",
	TypeLongNVarchar:          "LONGNVARCHAR",
	TypeNClob:                 "NCLOB",
	TypeSQLXML:                "SQLXML",
	TypeRefCursor:             "REF_CURSOR",
	TypeTimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TypeTimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
}

// TypeName returns the standard name of a SQL type code, or "UNKNOWN".
func TypeName(code int) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return "UNKNOWN"
}
