package formcsv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteDriverName is the database/sql driver name registered by modernc.org/sqlite
const SQLiteDriverName = "sqlite"

// ImportSQLite creates table in db and inserts every row of doc into it.
//
// Column names come from the header and cell values are stored as they are,
// except that one pair of surrounding double quotes is removed from both, as
// written by Record.DataValues. Column types (INTEGER, REAL or TEXT) are
// inferred from the values; numbers with a leading zero stay TEXT.
// All rows are inserted in one transaction.
func ImportSQLite(ctx context.Context, db *sql.DB, table string, doc *Document) (err error) {
	ec := NewErrorContext("import", doc.Path()).WithTable(table)
	if !doc.HasHeader() {
		return ec.Error(ErrNoHeader)
	}
	if err := checkRows(doc); err != nil {
		return ec.Error(err)
	}

	header := make(Header, len(doc.header))
	for i, name := range doc.header {
		header[i] = unquote(name)
		if strings.TrimSpace(header[i]) == "" {
			header[i] = fmt.Sprintf("column%d", i+1)
		}
	}
	if err := validateColumnNames(header); err != nil {
		return ec.Error(err)
	}

	rows := make([]Row, len(doc.rows))
	for i, row := range doc.rows {
		rows[i] = make(Row, len(row))
		for j, cell := range row {
			rows[i][j] = unquote(cell)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ec.Error(err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if _, err := tx.ExecContext(ctx, buildCreateTableQuery(table, inferColumnsInfo(header, rows))); err != nil {
		return ec.Error(fmt.Errorf("failed to create table: %w", err))
	}

	if len(rows) > 0 {
		stmt, err := tx.PrepareContext(ctx, buildInsertQuery(table, len(header)))
		if err != nil {
			return ec.Error(fmt.Errorf("failed to prepare insert: %w", err))
		}
		defer stmt.Close()

		for i, row := range rows {
			args := make([]any, len(row))
			for j, cell := range row {
				args[j] = cell
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return ec.Error(fmt.Errorf("failed to insert line %d: %w", i+2, err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return ec.Error(err)
	}
	return nil
}

// buildCreateTableQuery builds the CREATE TABLE statement
func buildCreateTableQuery(table string, columns []columnInfo) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdentifier(col.Name) + " " + col.Type.String()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdentifier(table), strings.Join(defs, ", "))
}

// buildInsertQuery builds the INSERT statement with columnCount placeholders
func buildInsertQuery(table string, columnCount int) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", columnCount), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdentifier(table), placeholders)
}

// quoteIdentifier quotes a SQLite identifier
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// unquote removes one pair of surrounding double quotes
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

// validateColumnNames checks for duplicate column names and returns error if found.
// Column name comparison is case-insensitive, as SQLite identifiers are.
func validateColumnNames(columns []string) error {
	columnsSeen := make(map[string]bool)
	for _, col := range columns {
		key := strings.ToLower(strings.TrimSpace(col))
		if columnsSeen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnName, col)
		}
		columnsSeen[key] = true
	}
	return nil
}
