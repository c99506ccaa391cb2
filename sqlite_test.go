package formcsv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(SQLiteDriverName, ":memory:")
	require.NoError(t, err)
	// each connection of an in-memory database is a distinct database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestImportSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openMemoryDB(t)

	doc := New("records.csv", DefaultSeparator)
	doc.SetHeader([]string{`"nome"`, `"telefono"`, `"eta"`})
	require.NoError(t, doc.AddLine([]string{`"John"`, `"0796278810"`, `"30"`}))
	require.NoError(t, doc.AddLine([]string{`"Jane"`, `"123456789"`, `"25"`}))

	require.NoError(t, ImportSQLite(ctx, db, "records", doc))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count))
	assert.Equal(t, 2, count)

	var phone string
	var age int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT telefono, eta FROM records WHERE nome = ?`, "John").Scan(&phone, &age))
	assert.Equal(t, "0796278810", phone, "leading zero must be kept")
	assert.Equal(t, 30, age)

	var total int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT SUM(eta) FROM records`).Scan(&total))
	assert.Equal(t, 55, total)
}

func TestImportSQLite_HeaderOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openMemoryDB(t)

	doc := New("records.csv", DefaultSeparator)
	doc.SetHeader([]string{"a", ""})
	require.NoError(t, ImportSQLite(ctx, db, "empty", doc))

	rows, err := db.QueryContext(ctx, `SELECT a, column2 FROM empty`)
	require.NoError(t, err)
	defer rows.Close()
	assert.False(t, rows.Next())
	require.NoError(t, rows.Err())
}

func TestImportSQLite_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no header", func(t *testing.T) {
		t.Parallel()

		err := ImportSQLite(ctx, openMemoryDB(t), "records", New("records.csv", DefaultSeparator))
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("duplicate column", func(t *testing.T) {
		t.Parallel()

		doc := New("records.csv", DefaultSeparator)
		doc.SetHeader([]string{"name", `"Name"`})
		err := ImportSQLite(ctx, openMemoryDB(t), "records", doc)
		assert.ErrorIs(t, err, ErrDuplicateColumnName)
	})

	t.Run("malformed row", func(t *testing.T) {
		t.Parallel()

		db := openMemoryDB(t)
		doc := New("records.csv", DefaultSeparator)
		doc.SetHeader([]string{"a", "b"})
		require.NoError(t, doc.AddLine([]string{"1"}))

		err := ImportSQLite(ctx, db, "records", doc)
		require.ErrorIs(t, err, ErrMalformedRow)

		_, err = db.ExecContext(ctx, `SELECT * FROM records`)
		assert.Error(t, err, "table must not be created")
	})

	t.Run("existing table rolls back", func(t *testing.T) {
		t.Parallel()

		db := openMemoryDB(t)
		_, err := db.ExecContext(ctx, `CREATE TABLE records (a TEXT)`)
		require.NoError(t, err)

		doc := New("records.csv", DefaultSeparator)
		doc.SetHeader([]string{"a"})
		require.NoError(t, doc.AddLine([]string{"1"}))

		err = ImportSQLite(ctx, db, "records", doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table: records")
	})
}

func TestBuildQueries(t *testing.T) {
	t.Parallel()

	columns := []columnInfo{
		{Name: "nome", Type: columnTypeText},
		{Name: `we"ird`, Type: columnTypeInteger},
	}
	assert.Equal(t, `CREATE TABLE "t" ("nome" TEXT, "we""ird" INTEGER)`, buildCreateTableQuery("t", columns))
	assert.Equal(t, `INSERT INTO "t" VALUES (?, ?)`, buildInsertQuery("t", 2))
	assert.Equal(t, "a", unquote(`"a"`))
	assert.Equal(t, `"`, unquote(`"`))
	assert.Equal(t, "", unquote(`""`))
}
