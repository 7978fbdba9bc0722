package ndjson

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"rowsift/internal/record"
	"rowsift/source"
)

// Driver reads one JSON object per line. There is no header line, so rows
// are numbered from 1. Scalar values are rendered to strings before
// coercion, giving both source kinds the same raw-row shape.
type Driver struct {
	cfg source.Config
}

func (d *Driver) Configure(cfg source.Config) error {
	if cfg.Path == "" {
		return errors.New("ndjson-source: path required")
	}
	d.cfg = cfg
	return nil
}

func (d *Driver) Run(ctx context.Context, emit source.EmitFunc) error {
	f, err := os.Open(d.cfg.Path)
	if err != nil {
		return fmt.Errorf("ndjson-source: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for row := 1; sc.Scan(); row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue // blank line still consumes a row number
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			// a non-object line is a malformed input stream, not a bad value
			return fmt.Errorf("ndjson-source: row %d: %w", row, err)
		}
		if obj == nil {
			// bare `null` unmarshals into a nil map without error
			return fmt.Errorf("ndjson-source: row %d: not a JSON object", row)
		}
		if err := emit(toRaw(row, obj)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ndjson-source: %w", err)
	}
	return nil
}

func (d *Driver) Close() error { return nil }

// toRaw flattens a decoded object into field/value string pairs. JSON objects
// carry no order, so fields are sorted for a stable raw rendering; the job
// schema's order is what determines output columns.
func toRaw(row int, obj map[string]any) record.Raw {
	fields := make([]string, 0, len(obj))
	for k := range obj {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	values := make([]string, len(fields))
	for i, k := range fields {
		values[i] = renderScalar(obj[k])
	}
	return record.Raw{Row: row, Fields: fields, Values: values}
}

func renderScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
