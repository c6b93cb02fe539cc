package sqlite

// SQL queries for SQLite metadata introspection. A NULL schema argument to
// pragma_table_info searches every attached database.
const (
	queryListSchemas = `SELECT name FROM pragma_database_list ORDER BY seq`

	queryListTables = `
		SELECT name
		FROM pragma_table_list
		WHERE schema = ?
		  AND type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY name`

	queryGetColumns = `
		SELECT name, type, "notnull", cid + 1
		FROM pragma_table_info(?, ?)
		ORDER BY cid`

	queryPrimaryKeys = `
		SELECT name, pk
		FROM pragma_table_info(?, ?)
		WHERE pk > 0
		ORDER BY pk`

	queryColumnTypes = `
		SELECT name, type, "notnull", cid + 1
		FROM pragma_table_info(?, ?)
		WHERE ? = '' OR name = ? COLLATE NOCASE
		ORDER BY cid`
)
