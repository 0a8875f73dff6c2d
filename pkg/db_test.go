package pkg

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintErrors_Postgres(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, IsUniqueViolationError(unique))
	assert.False(t, IsUniqueViolationError(fk))
	assert.True(t, IsForeignKeyViolationError(fk))
	assert.False(t, IsForeignKeyViolationError(unique))
	assert.True(t, IsCheckViolationError(check))
}

func TestConstraintErrors_Other(t *testing.T) {
	err := errors.New("some error")
	assert.False(t, IsUniqueViolationError(err))
	assert.False(t, IsForeignKeyViolationError(err))
	assert.False(t, IsCheckViolationError(err))
	assert.False(t, IsUniqueViolationError(nil))
}

func TestConstraintErrors_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`PRAGMA foreign_keys = ON`,
		`CREATE TABLE parent (id INTEGER PRIMARY KEY, name TEXT UNIQUE, qty INTEGER CHECK (qty >= 0))`,
		`CREATE TABLE child_no_action (id INTEGER PRIMARY KEY, parent_id INTEGER REFERENCES parent (id))`,
		`CREATE TABLE child_restrict (id INTEGER PRIMARY KEY, parent_id INTEGER REFERENCES parent (id) ON DELETE RESTRICT)`,
		`INSERT INTO parent (id, name, qty) VALUES (1, 'a', 1), (2, 'b', 1)`,
		`INSERT INTO child_no_action (parent_id) VALUES (1)`,
		`INSERT INTO child_restrict (parent_id) VALUES (2)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	_, err = db.Exec(`INSERT INTO child_no_action (parent_id) VALUES (42)`)
	assert.True(t, IsForeignKeyViolationError(err))

	_, err = db.Exec(`DELETE FROM parent WHERE id = 1`)
	assert.True(t, IsForeignKeyViolationError(err))

	// RESTRICT fails with SQLITE_CONSTRAINT_TRIGGER (1811), not 787
	_, err = db.Exec(`DELETE FROM parent WHERE id = 2`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolationError(fmt.Errorf("delete: %w", err)))
	assert.False(t, IsUniqueViolationError(err))

	_, err = db.Exec(`INSERT INTO parent (id, name, qty) VALUES (3, 'a', 1)`)
	assert.True(t, IsUniqueViolationError(err))
	assert.False(t, IsForeignKeyViolationError(err))

	_, err = db.Exec(`INSERT INTO parent (id, name, qty) VALUES (4, 'd', -1)`)
	assert.True(t, IsCheckViolationError(err))
}
