package main

import (
	"context"
	"sort"

	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/spf13/cobra"
)

// primaryKeysResult is the output of the pk command.
type primaryKeysResult struct {
	Table       string           `json:"table" yaml:"table"`
	PrimaryKeys map[string]int16 `json:"primary_keys" yaml:"primary_keys"`
}

// sqlTypeResult is the output of the type command.
type sqlTypeResult struct {
	Schema   string `json:"schema,omitempty" yaml:"schema,omitempty"`
	Table    string `json:"table" yaml:"table"`
	Column   string `json:"column" yaml:"column"`
	TypeCode int    `json:"type_code" yaml:"type_code"`
	TypeName string `json:"type_name" yaml:"type_name"`
}

// connectionEntry is one line of the connections command.
type connectionEntry struct {
	Name    string `json:"name" yaml:"name"`
	Driver  string `json:"driver" yaml:"driver"`
	Target  string `json:"target" yaml:"target"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

func newPKCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pk TABLE",
		Short: "Print the primary-key columns of a table with their key sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
			defer cancel()

			svc, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer svc.Disconnect()

			keys, err := svc.PrimaryKeys(ctx, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, primaryKeysResult{
				Table:       args[0],
				PrimaryKeys: keys,
			})
		},
	}
}

func newTypeCmd(opts *rootOptions) *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "type TABLE COLUMN",
		Short: "Print the standard SQL type code of a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
			defer cancel()

			svc, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer svc.Disconnect()

			code, err := svc.SQLType(ctx, schema, args[0], args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, sqlTypeResult{
				Schema:   schema,
				Table:    args[0],
				Column:   args[1],
				TypeCode: code,
				TypeName: database.TypeName(code),
			})
		},
	}
	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema of the table (default: any)")

	return cmd
}

func newConnectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "connections",
		Short: "List saved connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.OutOrStdout(), opts.output, connectionEntries(opts))
		},
	}
}

func connectionEntries(opts *rootOptions) []connectionEntry {
	def := opts.cfg.Preferences.DefaultConnection
	entries := make([]connectionEntry, 0, len(opts.cfg.Connections))
	for _, c := range opts.cfg.Connections {
		entries = append(entries, connectionEntry{
			Name:    c.Name,
			Driver:  c.Driver,
			Target:  c.DisplayString(),
			Default: c.Name == def,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
