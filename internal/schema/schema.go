package schema

import (
	"errors"
	"fmt"
	"strconv"

	"rowsift/internal/record"
)

// Kind is the coerced type of one field.
type Kind string

const (
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
)

// ErrMissingField marks a row that lacks a schema field entirely, as opposed
// to carrying a value that fails to parse.
var ErrMissingField = errors.New("field missing from row")

// FieldError reports why one field of a row could not be coerced.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("field %q: value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of fields a run coerces. Order is authoritative
// for output column order.
type Schema struct {
	fields []Field
}

// New validates field names and kinds up front so a bad job file fails at
// compile time, not mid-run.
func New(fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errors.New("schema: no fields")
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, errors.New("schema: field with empty name")
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Kind {
		case String, Int, Float:
		default:
			return nil, fmt.Errorf("schema: field %q: unsupported type %q", f.Name, f.Kind)
		}
	}
	return &Schema{fields: fields}, nil
}

func (s *Schema) Fields() []Field { return s.fields }

// Names returns the field names in schema order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Coerce applies every field coercion to a raw row. It returns either a fully
// coerced record or the first *FieldError; no partially coerced record is
// ever produced.
func (s *Schema) Coerce(raw record.Raw) (record.Record, error) {
	fields := make([]string, len(s.fields))
	values := make([]any, len(s.fields))
	for i, f := range s.fields {
		v, ok := raw.Get(f.Name)
		if !ok {
			return record.Record{}, &FieldError{Field: f.Name, Err: ErrMissingField}
		}
		coerced, err := coerce(f.Kind, v)
		if err != nil {
			return record.Record{}, &FieldError{Field: f.Name, Value: v, Err: err}
		}
		fields[i] = f.Name
		values[i] = coerced
	}
	return record.New(fields, values), nil
}

func coerce(k Kind, v string) (any, error) {
	switch k {
	case Int:
		return strconv.ParseInt(v, 10, 64)
	case Float:
		return strconv.ParseFloat(v, 64)
	default:
		return v, nil
	}
}
