package source

import (
	"context"
	"fmt"

	"rowsift/internal/record"
)

// EmitFunc receives one raw row. A non-nil return aborts the read; the
// driver must propagate it unchanged.
type EmitFunc func(record.Raw) error

// Adapter is the common behaviour every source driver exposes. Run is
// single-pass and non-restartable: it reads the input front to back, calls
// emit once per data row in input order, and releases the underlying
// resource on every exit path.
type Adapter interface {
	Configure(Config) error
	Run(context.Context, EmitFunc) error
	Close() error
}

// Config is shared by the file-backed drivers.
type Config struct {
	Path string `koanf:"path"`

	// Delimiter applies to delimited-text drivers; empty means sniff.
	Delimiter  string `koanf:"delimiter"`
	TrimSpaces bool   `koanf:"trim_spaces"`
}

/*──────── registry ───────*/

// Factory builds an Adapter (e.g., csv.Driver, ndjson.Driver).
type Factory func() Adapter

var registry = map[string]Factory{}

// Register is called from each driver's init() or main() factory map.
func Register(kind string, f Factory) { registry[kind] = f }

// NewAdapter returns a driver by kind ("csv", "ndjson").
func NewAdapter(kind string) (Adapter, error) {
	if f, ok := registry[kind]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("source: unsupported kind %q", kind)
}
