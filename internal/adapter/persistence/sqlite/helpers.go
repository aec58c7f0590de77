// Package sqlite stores the proposal records in a local SQLite database.
// It mirrors the DynamoDB repositories: lookups of missing rows return an
// empty entity and never an error.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"propostas_api/internal/usecase/interfaces"

	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

// nullable stores "" as NULL so optional foreign keys stay valid.
func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// mapConstraint turns primary key and unique violations into
// interfaces.ErrDuplicateRecord.
func mapConstraint(err error) error {
	var se *driver.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return interfaces.ErrDuplicateRecord
		}
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}
