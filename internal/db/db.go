package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// DB wraps an in-memory sql.DB holding loaded dataset tables.
type DB struct {
	*sql.DB
	mu sync.RWMutex
}

// OpenMemory creates an in-memory SQLite database.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
    name TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    columns TEXT NOT NULL DEFAULT '[]',
    row_count INTEGER NOT NULL DEFAULT 0,
    loaded_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// QuoteIdent quotes an SQL identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CreateTable creates a table whose columns are all nullable TEXT.
func (d *DB) CreateTable(ctx context.Context, table string, columns []string) error {
	if len(columns) == 0 {
		return fmt.Errorf("table %s: no columns", table)
	}
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = QuoteIdent(c) + " TEXT"
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdent(table), strings.Join(cols, ", "))
	if _, err := d.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}
	return nil
}

// InsertRows inserts rows into table in a single transaction. A nil cell
// is stored as NULL.
func (d *DB) InsertRows(ctx context.Context, table string, width int, rows [][]*string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning insert: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", width), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", QuoteIdent(table), placeholders))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, width)
	for n, row := range rows {
		for i := range args {
			if i < len(row) && row[i] != nil {
				args[i] = *row[i]
			} else {
				args[i] = nil
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", n+1, err)
		}
	}

	return tx.Commit()
}

// SelectRows returns up to limit rows of table in insertion order.
func (d *DB) SelectRows(ctx context.Context, table string, width, limit int) ([][]*string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rows, err := d.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY rowid LIMIT ?", QuoteIdent(table)), limit)
	if err != nil {
		return nil, fmt.Errorf("selecting from %s: %w", table, err)
	}
	defer rows.Close()

	var out [][]*string
	for rows.Next() {
		cells := make([]sql.NullString, width)
		dest := make([]any, width)
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]*string, width)
		for i, c := range cells {
			if c.Valid {
				v := c.String
				row[i] = &v
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountRows returns the number of rows in table.
func (d *DB) CountRows(ctx context.Context, table string) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var n int
	if err := d.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+QuoteIdent(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
