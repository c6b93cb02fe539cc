package postgres

// SQL queries for PostgreSQL metadata introspection.
const (
	queryListSchemas = `
		SELECT schema_name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY schema_name`

	queryListTables = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	queryGetColumns = `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable,
			c.ordinal_position::int4
		FROM information_schema.columns c
		WHERE c.table_schema = $1
		  AND c.table_name = $2
		ORDER BY c.ordinal_position`

	// Empty catalog and schema arguments match any catalog and schema.
	queryPrimaryKeys = `
		SELECT
			kcu.table_catalog,
			kcu.table_schema,
			kcu.table_name,
			kcu.column_name,
			kcu.ordinal_position::int2
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.constraint_schema = kcu.constraint_schema
			AND tc.table_name = kcu.table_name
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND ($1::text = '' OR tc.table_catalog = $1::text)
		  AND ($2::text = '' OR tc.table_schema = $2::text)
		  AND tc.table_name = $3
		ORDER BY kcu.table_schema, kcu.ordinal_position`

	// An empty column argument matches every column of the table.
	queryColumnTypes = `
		SELECT
			c.table_catalog,
			c.table_schema,
			c.table_name,
			c.column_name,
			c.udt_name,
			c.is_nullable,
			c.ordinal_position::int4
		FROM information_schema.columns c
		WHERE ($1::text = '' OR c.table_catalog = $1::text)
		  AND ($2::text = '' OR c.table_schema = $2::text)
		  AND c.table_name = $3
		  AND ($4::text = '' OR c.column_name = $4::text)
		ORDER BY c.table_schema, c.ordinal_position`
)
