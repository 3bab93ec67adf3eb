package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLDSNUsesSocketWhenGiven(t *testing.T) {
	dsn := mysqlDSN(Config{DbName: "d", User: "u", Password: "p", Socket: "/tmp/mysql.sock"})
	assert.Contains(t, dsn, "unix(/tmp/mysql.sock)")
}

func TestMySQLDSNUsesTCPByDefault(t *testing.T) {
	dsn := mysqlDSN(Config{DbName: "d", User: "u", Host: "127.0.0.1", Port: 3306})
	assert.Contains(t, dsn, "tcp(127.0.0.1:3306)")
}

func TestMySQLQuote(t *testing.T) {
	assert.Equal(t, "`t1`", mysqlQuote("t1"))
}

func TestPostgresDSNIncludesFields(t *testing.T) {
	dsn := postgresDSN(Config{DbName: "d", User: "u", Password: "p", Host: "h", Port: 5432})
	assert.Contains(t, dsn, "dbname=d")
	assert.Contains(t, dsn, "user=u")
	assert.Contains(t, dsn, "host=h")
	assert.Contains(t, dsn, "port=5432")
}

func TestPostgresDSNPrefersSocket(t *testing.T) {
	dsn := postgresDSN(Config{DbName: "d", Socket: "/tmp"})
	assert.Contains(t, dsn, "host=/tmp")
}

func TestPostgresQuote(t *testing.T) {
	assert.Equal(t, `"t1"`, postgresQuote("t1"))
}

func TestMSSQLQuote(t *testing.T) {
	assert.Equal(t, "[t1]", mssqlQuote("t1"))
}

func TestSQLiteQuote(t *testing.T) {
	assert.Equal(t, `"t1"`, sqliteQuote("t1"))
}

func TestOpenUnknownType(t *testing.T) {
	_, err := Open("oracle", Config{})
	assert.Error(t, err)
}
