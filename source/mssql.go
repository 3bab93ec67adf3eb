package source

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb"
)

// NewMSSQL opens a SQL Server-backed RowSource.
func NewMSSQL(config Config) (RowSource, error) {
	db, err := sql.Open("sqlserver", mssqlDSN(config))
	if err != nil {
		return nil, err
	}
	return &sqlRowSource{db: db, quote: mssqlQuote}, nil
}

func mssqlDSN(config Config) string {
	query := url.Values{}
	query.Add("database", config.DbName)

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(config.User, config.Password),
		Host:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}

func mssqlQuote(identifier string) string {
	return "[" + identifier + "]"
}
