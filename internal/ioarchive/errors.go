package ioarchive

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// ConnectionError is returned when the archive database is not reachable.
func ConnectionError(host string, port int, database, user string, err error) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d/%s</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Check database section of config.yaml`
	vars := []any{host, port, database, host, port, host, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s:%d/%s: %w",
			fn.Name(), host, port, database, err),
	}
}

// NotConnectedError is returned when the archive is used without a
// connection.
func NotConnectedError() error {
	msg := "Archive operation attempted without database connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected to database", fn.Name()),
	}
}

// GORMConnectionError is returned when GORM cannot use the pool.
func GORMConnectionError(err error) error {
	msg := "Cannot connect to database with GORM"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to connect with GORM: %w", fn.Name(), err),
	}
}

// MigrateError is returned when archive tables cannot be created.
func MigrateError(err error) error {
	msg := `Cannot create archive tables

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Check database logs for details`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to migrate schema: %w", fn.Name(), err),
	}
}

// SaveError is returned when a run cannot be archived.
func SaveError(id string, err error) error {
	msg := `Cannot archive run <em>%s</em>

<em>How to fix:</em>
  1. Run <em>gnflora archive init</em> to create archive tables`
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save run %s: %w", fn.Name(), id, err),
	}
}
