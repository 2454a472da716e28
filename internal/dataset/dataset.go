package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ziadkadry99/traindelay/internal/db"
)

// tableName is the SQLite table the CSV rows are loaded into.
const tableName = "records"

// naValues are the cell values read as missing, matching pandas' defaults.
var naValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
	"NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// Dataset is a tabular CSV file held in an in-memory SQLite table.
type Dataset struct {
	db       *db.DB
	source   string
	columns  []string
	rows     int
	loadedAt time.Time
}

// Load reads the CSV file at path.
func Load(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds.source = path
	if err := ds.recordMetadata(ctx); err != nil {
		ds.Close()
		return nil, err
	}
	return ds, nil
}

// Read parses CSV from r. The first record is the header.
func Read(ctx context.Context, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	columns := normalizeHeader(header)

	var rows [][]*string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(columns), len(record))
		}
		row := make([]*string, len(columns))
		for i, v := range record {
			if naValues[v] {
				continue
			}
			val := v
			row[i] = &val
		}
		rows = append(rows, row)
	}

	store, err := db.OpenMemory()
	if err != nil {
		return nil, err
	}
	if err := store.CreateTable(ctx, tableName, columns); err != nil {
		store.Close()
		return nil, err
	}
	if err := store.InsertRows(ctx, tableName, len(columns), rows); err != nil {
		store.Close()
		return nil, err
	}

	return &Dataset{
		db:       store,
		source:   "<reader>",
		columns:  columns,
		rows:     len(rows),
		loadedAt: time.Now(),
	}, nil
}

// normalizeHeader names empty columns "Unnamed: i" and suffixes duplicates
// with ".1", ".2" and so on.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	suffix := make(map[string]int)
	for i, h := range header {
		name := h
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		for base := name; seen[name]; {
			suffix[base]++
			name = fmt.Sprintf("%s.%d", base, suffix[base])
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

func (d *Dataset) recordMetadata(ctx context.Context) error {
	n, err := d.db.CountRows(ctx, tableName)
	if err != nil {
		return err
	}
	if n != d.rows {
		return fmt.Errorf("dataset table holds %d rows, parsed %d", n, d.rows)
	}
	cols, err := json.Marshal(d.columns)
	if err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO datasets (name, source, columns, row_count) VALUES (?, ?, ?, ?)`,
		tableName, d.source, string(cols), d.rows)
	if err != nil {
		return fmt.Errorf("recording dataset metadata: %w", err)
	}
	return nil
}

// Len returns the number of data rows (the header is not counted).
func (d *Dataset) Len() int { return d.rows }

// Columns returns the column names.
func (d *Dataset) Columns() []string { return append([]string(nil), d.columns...) }

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was read.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Close releases the backing database.
func (d *Dataset) Close() error { return d.db.Close() }

// Head returns the first n rows.
func (d *Dataset) Head(ctx context.Context, n int) (Preview, error) {
	if n < 0 {
		n = 0
	}
	rows, err := d.db.SelectRows(ctx, tableName, len(d.columns), n)
	if err != nil {
		return Preview{}, err
	}
	return Preview{Columns: d.Columns(), Rows: rows}, nil
}

// Preview is a slice of the dataset where nil cells are missing values.
type Preview struct {
	Columns []string
	Rows    [][]*string
}

// Fill returns the preview rows with missing values replaced by placeholder.
func (p Preview) Fill(placeholder string) [][]string {
	out := make([][]string, len(p.Rows))
	for i, row := range p.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			if c == nil {
				cells[j] = placeholder
			} else {
				cells[j] = *c
			}
		}
		out[i] = cells
	}
	return out
}
