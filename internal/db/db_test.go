package db

import (
	"context"
	"testing"
)

func strp(s string) *string { return &s }

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM datasets").Scan(&count); err != nil {
		t.Errorf("datasets table: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestInsertAndSelect(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()
	ctx := context.Background()

	cols := []string{"station", `odd "name"`, "delay"}
	if err := d.CreateTable(ctx, "rides", cols); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	rows := [][]*string{
		{strp("Berlin Hbf"), strp("x"), strp("4")},
		{strp("Köln Hbf"), nil, nil},
		{strp("Hamburg"), strp("y"), strp("0")},
	}
	if err := d.InsertRows(ctx, "rides", len(cols), rows); err != nil {
		t.Fatalf("InsertRows: %v", err)
	}

	n, err := d.CountRows(ctx, "rides")
	if err != nil {
		t.Fatalf("CountRows: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 rows, got %d", n)
	}

	got, err := d.SelectRows(ctx, "rides", len(cols), 2)
	if err != nil {
		t.Fatalf("SelectRows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if *got[0][0] != "Berlin Hbf" {
		t.Errorf("row 0 station = %q", *got[0][0])
	}
	if got[1][1] != nil || got[1][2] != nil {
		t.Error("expected NULL cells to come back as nil")
	}
}

func TestCreateTableNoColumns(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if err := d.CreateTable(context.Background(), "empty", nil); err == nil {
		t.Error("expected error for table without columns")
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := QuoteIdent(`a"b`); got != `"a""b"` {
		t.Errorf("QuoteIdent = %s", got)
	}
}
