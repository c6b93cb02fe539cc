package database

// Column represents a table column as listed by a Driver.
type Column struct {
	Name       string
	DataType   string
	IsNullable bool
	OrdinalPos int
}

// PrimaryKey is one row of a primary-key listing.
type PrimaryKey struct {
	Catalog    string
	Schema     string
	Table      string
	ColumnName string
	// KeySeq is the 1-based position of the column within the key.
	KeySeq int16
}

// ColumnType is one row of a column catalog lookup.
type ColumnType struct {
	Catalog  string
	Schema   string
	Table    string
	Column   string
	TypeName string
	// DataType is the standard SQL type code, see TypeVarchar and friends.
	DataType int
	Nullable bool
	Position int
}
