package duckdb

// SQL queries for DuckDB metadata introspection. DuckDB matches
// identifiers case-insensitively, so lookups compare lower-cased names.
const (
	queryCurrentDatabase = `SELECT current_database()`

	queryListSchemas = `
		SELECT schema_name
		FROM duckdb_schemas()
		WHERE database_name = current_database()
		  AND schema_name NOT IN ('information_schema', 'pg_catalog')
		ORDER BY schema_name`

	queryListTables = `
		SELECT table_name
		FROM duckdb_tables()
		WHERE database_name = current_database()
		  AND schema_name = ?
		ORDER BY table_name`

	queryGetColumns = `
		SELECT column_name, data_type, is_nullable, column_index
		FROM duckdb_columns()
		WHERE database_name = current_database()
		  AND schema_name = ?
		  AND table_name = ?
		ORDER BY column_index`

	queryPrimaryKeys = `
		SELECT database_name, schema_name, table_name,
		       unnest(constraint_column_names) AS column_name,
		       unnest(range(1, len(constraint_column_names) + 1)) AS key_seq
		FROM duckdb_constraints()
		WHERE constraint_type = 'PRIMARY KEY'
		  AND (? = '' OR lower(database_name) = lower(?))
		  AND (? = '' OR lower(schema_name) = lower(?))
		  AND lower(table_name) = lower(?)
		ORDER BY schema_name, key_seq`

	queryColumnTypes = `
		SELECT database_name, schema_name, table_name, column_name,
		       data_type, is_nullable, column_index
		FROM duckdb_columns()
		WHERE (? = '' OR lower(database_name) = lower(?))
		  AND (? = '' OR lower(schema_name) = lower(?))
		  AND lower(table_name) = lower(?)
		  AND (? = '' OR lower(column_name) = lower(?))
		ORDER BY schema_name, column_index`
)
