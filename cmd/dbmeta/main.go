package main

import (
	"fmt"
	"os"

	_ "github.com/joacominatel/dbmeta/internal/database/duckdb"
	_ "github.com/joacominatel/dbmeta/internal/database/mysql"
	_ "github.com/joacominatel/dbmeta/internal/database/postgres"
	_ "github.com/joacominatel/dbmeta/internal/database/sqlite"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
