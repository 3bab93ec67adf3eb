package source

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
)

// NewMySQL opens a MySQL-backed RowSource.
func NewMySQL(config Config) (RowSource, error) {
	db, err := sql.Open("mysql", mysqlDSN(config))
	if err != nil {
		return nil, err
	}
	return &sqlRowSource{db: db, quote: mysqlQuote}, nil
}

func mysqlDSN(config Config) string {
	c := driver.NewConfig()
	c.User = config.User
	c.Passwd = config.Password
	c.DBName = config.DbName
	c.TLSConfig = "preferred"
	if config.Socket == "" {
		c.Net = "tcp"
		c.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	} else {
		c.Net = "unix"
		c.Addr = config.Socket
	}
	return c.FormatDSN()
}

func mysqlQuote(identifier string) string {
	return "`" + identifier + "`"
}
