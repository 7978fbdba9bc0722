package sink

import (
	"fmt"

	"rowsift/internal/record"
)

// Adapter is the common behaviour every sink exposes. Streaming sinks write
// from Push; batch sinks buffer and do the real write in Close. Either way a
// returned error is fatal to the run and the output must be treated as
// incomplete.
type Adapter interface {
	Configure(any) error      // driver-specific YAML ⇒ struct
	Push(record.Record) error // consume one validated record
	Close() error             // flush/finalize, idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
