package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{dsn: "postgres://u:p@localhost:5432/books?sslmode=disable", want: true},
		{dsn: "postgresql://u@db/books", want: true},
		{dsn: "host=localhost user=postgres dbname=books", want: true},
		{dsn: "file:bookstore.db", want: false},
		{dsn: ":memory:", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPostgresDSN(tt.dsn))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:books.db?_pragma=foreign_keys(1)", SQLiteDSN("file:books.db"))
	assert.Equal(t, "file::memory:?cache=shared&_pragma=foreign_keys(1)", SQLiteDSN("file::memory:?cache=shared"))
	assert.Equal(t, "file:x.db?_pragma=foreign_keys(0)", SQLiteDSN("file:x.db?_pragma=foreign_keys(0)"))
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "", DriverPgx)
	assert.ErrorIs(t, err, ErrEmptyDSN)
}

func TestOpen_SQLiteMemory(t *testing.T) {
	db, err := Open(context.Background(), "file::memory:", DriverPgx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
