package parquet

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"rowsift/internal/record"
	"rowsift/internal/schema"
	"rowsift/sink"
)

// Config carries the output path plus the coerced field kinds; the parquet
// column types must match the coercions exactly.
type Config struct {
	Path   string `yaml:"path"`
	Fields []schema.Field
}

// driver is a batch sink: records are buffered in memory and written in one
// finalize call from Close.
type driver struct {
	cfg    Config
	pqs    *parquet.Schema
	buffer []map[string]any
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("parquet-sink: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return errors.New("parquet-sink: path required")
	}
	if len(c.Fields) == 0 {
		return errors.New("parquet-sink: schema fields required")
	}
	d.cfg = c

	group := parquet.Group{}
	for _, f := range c.Fields {
		switch f.Kind {
		case schema.Int:
			group[f.Name] = parquet.Leaf(parquet.Int64Type)
		case schema.Float:
			group[f.Name] = parquet.Leaf(parquet.DoubleType)
		default:
			group[f.Name] = parquet.String()
		}
	}
	d.pqs = parquet.NewSchema("record", group)
	return nil
}

func (d *driver) Push(rec record.Record) error {
	d.buffer = append(d.buffer, rec.Map())
	return nil
}

func (d *driver) Close() error {
	if d.pqs == nil {
		return nil
	}
	defer func() { d.pqs = nil }()

	f, err := os.Create(d.cfg.Path)
	if err != nil {
		return fmt.Errorf("parquet-sink: %w", err)
	}
	w := parquet.NewGenericWriter[map[string]any](f, d.pqs)
	if len(d.buffer) > 0 {
		if _, err := w.Write(d.buffer); err != nil {
			_ = f.Close()
			return fmt.Errorf("parquet-sink: write: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("parquet-sink: finalize: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("parquet-sink: finalize: %w", err)
	}
	d.buffer = nil
	return nil
}

func init() {
	sink.Register("parquet", func() sink.Adapter { return &driver{} })
}
