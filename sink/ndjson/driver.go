package ndjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"rowsift/internal/record"
	"rowsift/sink"
)

/* ────────── public YAML config ────────── */

type Config struct {
	Path string `yaml:"path"`
}

/* ────────── driver ────────── */

// driver streams records as one JSON object per line, UTF-8, no BOM.
type driver struct {
	cfg Config
	f   *os.File
	w   *bufio.Writer
	enc *json.Encoder
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("ndjson-sink: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return errors.New("ndjson-sink: path required")
	}
	d.cfg = c

	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("ndjson-sink: %w", err)
	}
	d.f = f
	d.w = bufio.NewWriter(f)
	d.enc = json.NewEncoder(d.w)
	return nil
}

func (d *driver) Push(rec record.Record) error {
	if err := d.enc.Encode(orderedObject(rec)); err != nil {
		return fmt.Errorf("ndjson-sink: %w", err)
	}
	return nil
}

func (d *driver) Close() error {
	if d.f == nil {
		return nil
	}
	err := d.w.Flush()
	if err == nil {
		err = d.f.Sync()
	}
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	d.f = nil
	if err != nil {
		return fmt.Errorf("ndjson-sink: finalize: %w", err)
	}
	return nil
}

// orderedObject serializes fields in record order rather than Go map order.
func orderedObject(rec record.Record) json.RawMessage {
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	fields, values := rec.Fields(), rec.Values()
	for i, f := range fields {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, _ := json.Marshal(f)
		v, _ := json.Marshal(values[i])
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	buf = append(buf, '}')
	return buf
}

/* ────────── auto-register ────────── */

func init() {
	sink.Register("ndjson", func() sink.Adapter { return &driver{} })
}
