package stdout

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"rowsift/internal/record"
	"rowsift/sink"
)

/* ────────── public YAML config ────────── */

type Config struct {
	PrintCounter  bool `yaml:"print_counter"`   // prepend seq#
	ValueMaxBytes int  `yaml:"value_max_bytes"` // 0 = unlimited
}

/* ────────── driver ────────── */

type driver struct {
	cfg Config
}

var seq uint64

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	return nil
}

func (d *driver) Push(rec record.Record) error {
	line := render(rec)
	if m := d.cfg.ValueMaxBytes; m > 0 && len(line) > m {
		line = truncate(line, m)
	}
	if d.cfg.PrintCounter {
		fmt.Printf("[sink %06d] %s\n", atomic.AddUint64(&seq, 1), line)
	} else {
		fmt.Printf("[sink] %s\n", line)
	}
	return nil
}

func (d *driver) Close() error { return nil }

// truncate cuts on a rune boundary so the output stays valid UTF-8.
func truncate(s string, max int) string {
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "…"
}

func render(rec record.Record) string {
	out := ""
	fields, values := rec.Fields(), rec.Values()
	for i, f := range fields {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", f, values[i])
	}
	return out
}

/* ────────── auto-register ────────── */

func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
