package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"rowsift/internal/record"
	"rowsift/internal/schema"
)

var productFields = []schema.Field{
	{Name: "sku", Kind: schema.String},
	{Name: "price", Kind: schema.Float},
	{Name: "qty", Kind: schema.Int},
}

type productRow struct {
	SKU   string  `parquet:"sku"`
	Price float64 `parquet:"price"`
	Qty   int64   `parquet:"qty"`
}

func readBack(t *testing.T, path string) []productRow {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	r := parquet.NewGenericReader[productRow](f)
	defer r.Close()

	var out []productRow
	buf := make([]productRow, 8)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
	}
}

func TestClose_WritesAllBufferedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	d := &driver{}
	if err := d.Configure(Config{Path: path, Fields: productFields}); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	recs := []record.Record{
		record.New([]string{"sku", "price", "qty"}, []any{"A-01", 9.5, int64(3)}),
		record.New([]string{"sku", "price", "qty"}, []any{"A-03", 12.0, int64(1)}),
	}
	for _, r := range recs {
		if err := d.Push(r); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows := readBack(t, path)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != (productRow{SKU: "A-01", Price: 9.5, Qty: 3}) {
		t.Fatalf("row 0 mismatch: %+v", rows[0])
	}
	if rows[1] != (productRow{SKU: "A-03", Price: 12.0, Qty: 1}) {
		t.Fatalf("row 1 mismatch: %+v", rows[1])
	}
}

func TestClose_EmptyRunStillWritesValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	d := &driver{}
	if err := d.Configure(Config{Path: path, Fields: productFields}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rows := readBack(t, path); len(rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(rows))
	}
}

func TestConfigure_Validation(t *testing.T) {
	if err := (&driver{}).Configure(Config{Fields: productFields}); err == nil {
		t.Fatal("empty path must fail")
	}
	if err := (&driver{}).Configure(Config{Path: "x.parquet"}); err == nil {
		t.Fatal("missing fields must fail")
	}
	if err := (&driver{}).Configure(42); err == nil {
		t.Fatal("wrong config type must fail")
	}
}
