package source

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// NewSQLite opens a SQLite-backed RowSource. config.DbName is the path to
// the database file.
func NewSQLite(config Config) (RowSource, error) {
	db, err := sql.Open("sqlite", config.DbName)
	if err != nil {
		return nil, err
	}
	return &sqlRowSource{db: db, quote: sqliteQuote}, nil
}

func sqliteQuote(identifier string) string {
	return `"` + identifier + `"`
}
