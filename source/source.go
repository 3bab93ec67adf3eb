// Package source adapts the collaborator contract's row iteration
// requirement to real databases: each RowSource turns a (table, column)
// handle into the plain string iterable the core operates on. The core
// itself never imports this package; it is wired in by the command-line
// tools only.
package source

import (
	"context"
	"database/sql"
	"fmt"
)

// Config names the connection the RowSource dials. Socket, when set,
// selects a Unix socket connection over Host/Port (MySQL, Postgres).
type Config struct {
	DbName   string
	User     string
	Password string
	Host     string
	Port     int
	Socket   string
}

// RowSource is the collaborator contract's row-iteration abstraction: it
// turns a (table, column) handle into the in-memory string rows the core
// consumes. Null column values are surfaced as "" rather than dropped, so
// callers can apply the core's own null-row handling uniformly.
type RowSource interface {
	Rows(ctx context.Context, table, column string) ([]string, error)
	Close() error
}

// sqlRowSource is shared by every database/sql-backed RowSource: the
// dialects differ only in driver name, DSN construction and identifier
// quoting.
type sqlRowSource struct {
	db    *sql.DB
	quote func(identifier string) string
}

func (s *sqlRowSource) Rows(ctx context.Context, table, column string) ([]string, error) {
	query := "SELECT " + s.quote(column) + " FROM " + s.quote(table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		out = append(out, value.String)
	}
	return out, rows.Err()
}

func (s *sqlRowSource) Close() error {
	return s.db.Close()
}

// Open dials the dialect named by typ ("mysql", "postgres", "mssql" or
// "sqlite3") and returns the matching RowSource.
func Open(typ string, config Config) (RowSource, error) {
	switch typ {
	case "mysql":
		return NewMySQL(config)
	case "postgres":
		return NewPostgres(config)
	case "mssql":
		return NewMSSQL(config)
	case "sqlite3":
		return NewSQLite(config)
	default:
		return nil, fmt.Errorf("source: unknown database type %q", typ)
	}
}
