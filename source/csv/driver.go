package csv

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rowsift/internal/record"
	"rowsift/source"
)

// Driver reads delimited text with a header row. The header establishes the
// field names; data rows are numbered from 2 (the header is row 1).
type Driver struct {
	cfg source.Config
}

func (d *Driver) Configure(cfg source.Config) error {
	if cfg.Path == "" {
		return errors.New("csv-source: path required")
	}
	if len([]rune(cfg.Delimiter)) > 1 {
		return fmt.Errorf("csv-source: delimiter %q must be a single rune", cfg.Delimiter)
	}
	d.cfg = cfg
	return nil
}

func (d *Driver) Run(ctx context.Context, emit source.EmitFunc) error {
	f, err := os.Open(d.cfg.Path)
	if err != nil {
		return fmt.Errorf("csv-source: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var delim rune
	if d.cfg.Delimiter != "" {
		delim = []rune(d.cfg.Delimiter)[0]
	} else {
		delim = sniffDelimiter(br)
	}

	r := csv.NewReader(br)
	r.Comma = delim
	r.FieldsPerRecord = -1 // short rows become missing-field rejections downstream

	header, err := r.Read()
	if err == io.EOF {
		return nil // fully empty input: zero rows, not an error
	}
	if err != nil {
		return fmt.Errorf("csv-source: header: %w", err)
	}
	if d.cfg.TrimSpaces {
		trimAll(header)
	}

	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		vals, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("csv-source: row %d: %w", row, err)
		}
		if d.cfg.TrimSpaces {
			trimAll(vals)
		}
		if err := emit(record.Raw{Row: row, Fields: header, Values: vals}); err != nil {
			return err
		}
	}
}

func (d *Driver) Close() error { return nil }

// sniffDelimiter scores the first line over the common candidates without
// consuming the reader. Ties resolve to comma.
func sniffDelimiter(br *bufio.Reader) rune {
	sample, _ := br.Peek(4096)
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	best, bestN := ',', 0
	for _, c := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(sample, []byte(string(c))); n > bestN {
			best, bestN = c, n
		}
	}
	return best
}

func trimAll(ss []string) {
	for i, s := range ss {
		ss[i] = strings.TrimSpace(s)
	}
}
