package source

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// NewPostgres opens a PostgreSQL-backed RowSource.
func NewPostgres(config Config) (RowSource, error) {
	db, err := sql.Open("postgres", postgresDSN(config))
	if err != nil {
		return nil, err
	}
	return &sqlRowSource{db: db, quote: postgresQuote}, nil
}

func postgresDSN(config Config) string {
	var parts []string
	if config.DbName != "" {
		parts = append(parts, "dbname="+config.DbName)
	}
	if config.User != "" {
		parts = append(parts, "user="+config.User)
	}
	if config.Password != "" {
		parts = append(parts, "password="+config.Password)
	}
	if config.Socket != "" {
		parts = append(parts, "host="+config.Socket)
	} else if config.Host != "" {
		parts = append(parts, "host="+config.Host)
		if config.Port != 0 {
			parts = append(parts, fmt.Sprintf("port=%d", config.Port))
		}
	}
	parts = append(parts, "sslmode=disable")
	return strings.Join(parts, " ")
}

func postgresQuote(identifier string) string {
	return `"` + identifier + `"`
}
