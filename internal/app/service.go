package app

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/joacominatel/dbmeta/internal/metadata"
)

// SchemaTree represents the loaded schema hierarchy for the explorer.
type SchemaTree struct {
	Database string
	Schemas  []SchemaNode
}

// SchemaNode holds a schema name and its tables.
type SchemaNode struct {
	Name   string
	Tables []string
}

// ColumnInfo is a column together with what the Extractor reports for it.
type ColumnInfo struct {
	Name     string
	TypeName string
	Nullable bool
	// SQLType is the standard SQL type code.
	SQLType int
	// KeySeq is the position in the primary key, 0 when not part of it.
	KeySeq int16
}

// TableMetadata is the key and type information of one table.
type TableMetadata struct {
	Schema      string
	Table       string
	Columns     []ColumnInfo
	PrimaryKeys map[string]int16
}

// KeyColumns returns the primary-key column names ordered by key sequence.
func (t *TableMetadata) KeyColumns() []string {
	names := make([]string, 0, len(t.PrimaryKeys))
	for name := range t.PrimaryKeys {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return t.PrimaryKeys[names[i]] < t.PrimaryKeys[names[j]]
	})
	return names
}

// OpenFunc creates an unconnected driver by name.
type OpenFunc func(name string) (database.Driver, error)

// ExtractorFactory builds the Extractor used for a connected driver.
type ExtractorFactory func(source metadata.MetaDataSource, logger *slog.Logger) metadata.Extractor

// Option configures a Service.
type Option func(*Service)

// WithExtractorFactory replaces the default driver-metadata Extractor,
// for backends whose driver metadata is incomplete.
func WithExtractorFactory(f ExtractorFactory) Option {
	return func(s *Service) {
		s.newExtractor = f
	}
}

// WithLogger sets the logger passed to drivers' extractors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service coordinates application-level operations between the UI and database.
type Service struct {
	open         OpenFunc
	newExtractor ExtractorFactory
	logger       *slog.Logger

	driver     database.Driver
	driverName string
	extractor  metadata.Extractor
}

// NewService creates a new application service.
func NewService(open OpenFunc, opts ...Option) *Service {
	s := &Service{
		open:   open,
		logger: slog.New(slog.DiscardHandler),
		newExtractor: func(source metadata.MetaDataSource, logger *slog.Logger) metadata.Extractor {
			return metadata.NewDriverExtractor(source, logger)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect opens the named driver and establishes a database connection.
// An existing connection is closed first.
func (s *Service) Connect(ctx context.Context, driverName, dsn string) error {
	driver, err := s.open(driverName)
	if err != nil {
		return &ErrConnection{Driver: driverName, Cause: err}
	}
	if err := driver.Connect(ctx, dsn); err != nil {
		return &ErrConnection{Driver: driverName, Cause: err}
	}

	if s.driver != nil {
		_ = s.driver.Close()
	}
	s.driver = driver
	s.driverName = driverName
	s.extractor = s.newExtractor(driver, s.logger)

	s.logger.Info("connected", "driver", driverName, "database", driver.DatabaseName())
	return nil
}

// Disconnect closes the database connection.
func (s *Service) Disconnect() error {
	if s.driver == nil {
		return nil
	}
	err := s.driver.Close()
	s.driver = nil
	s.extractor = nil
	return err
}

// LoadSchemaTree fetches schemas and their tables for the connected database.
func (s *Service) LoadSchemaTree(ctx context.Context) (*SchemaTree, error) {
	if s.driver == nil {
		return nil, ErrNotConnected
	}

	schemas, err := s.driver.ListSchemas(ctx)
	if err != nil {
		return nil, err
	}

	tree := &SchemaTree{
		Database: s.driver.DatabaseName(),
	}

	for _, schema := range schemas {
		tables, err := s.driver.ListTables(ctx, schema)
		if err != nil {
			return nil, err
		}
		tree.Schemas = append(tree.Schemas, SchemaNode{
			Name:   schema,
			Tables: tables,
		})
	}

	return tree, nil
}

// LoadTableMetadata lists the columns of a table and resolves their key
// positions and SQL type codes through the Extractor.
func (s *Service) LoadTableMetadata(ctx context.Context, schema, table string) (*TableMetadata, error) {
	if s.driver == nil {
		return nil, ErrNotConnected
	}

	columns, err := s.driver.GetColumns(ctx, schema, table)
	if err != nil {
		return nil, &ErrMetadata{Schema: schema, Table: table, Cause: err}
	}

	keys, err := s.extractor.PrimaryKeys(ctx, table)
	if err != nil {
		return nil, &ErrMetadata{Schema: schema, Table: table, Cause: err}
	}

	// Keys are looked up without a schema; keep those of this table's columns.
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[strings.ToUpper(col.Name)] = true
	}
	for name := range keys {
		if !present[name] {
			s.logger.Warn("primary key column not in table", "schema", schema, "table", table, "column", name)
			delete(keys, name)
		}
	}

	meta := &TableMetadata{
		Schema:      schema,
		Table:       table,
		PrimaryKeys: keys,
	}
	for _, col := range columns {
		code, err := s.extractor.SQLType(ctx, schema, table, col.Name)
		if errors.Is(err, metadata.ErrColumnNotFound) {
			// Quoted names do not survive identifier conversion.
			s.logger.Warn("sql type unknown", "schema", schema, "table", table, "column", col.Name)
			code, err = database.TypeOther, nil
		}
		if err != nil {
			return nil, &ErrMetadata{Schema: schema, Table: table, Cause: err}
		}
		meta.Columns = append(meta.Columns, ColumnInfo{
			Name:     col.Name,
			TypeName: col.DataType,
			Nullable: col.IsNullable,
			SQLType:  code,
			KeySeq:   keys[strings.ToUpper(col.Name)],
		})
	}

	return meta, nil
}

// PrimaryKeys returns the primary-key map of a table.
func (s *Service) PrimaryKeys(ctx context.Context, table string) (map[string]int16, error) {
	if s.extractor == nil {
		return nil, ErrNotConnected
	}
	return s.extractor.PrimaryKeys(ctx, table)
}

// SQLType returns the SQL type code of a column. schema may be empty.
func (s *Service) SQLType(ctx context.Context, schema, table, column string) (int, error) {
	if s.extractor == nil {
		return 0, ErrNotConnected
	}
	return s.extractor.SQLType(ctx, schema, table, column)
}

// DatabaseName returns the current database name.
func (s *Service) DatabaseName() string {
	if s.driver == nil {
		return ""
	}
	return s.driver.DatabaseName()
}

// DriverName returns the name of the connected driver.
func (s *Service) DriverName() string {
	return s.driverName
}
