package repository

import (
	stdsql "database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	"modernc.org/sqlite"

	"github.com/knowledgepipe/knowledgepipe/gen/ent"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/enttest"
)

// modernc registers itself as "sqlite"; ent's SQLite dialect asks for
// "sqlite3", and foreign keys must be on for the job->chunk edge.
type sqlite3Driver struct {
	*sqlite.Driver
}

func (d sqlite3Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	stdsql.Register("sqlite3", sqlite3Driver{Driver: &sqlite.Driver{}})
}

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	// busy_timeout makes concurrent claim attempts queue instead of
	// failing with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(10000)", t.Name())
	client := enttest.Open(t, dialect.SQLite, dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
