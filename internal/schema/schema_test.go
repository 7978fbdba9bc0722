package schema

import (
	"errors"
	"testing"

	"rowsift/internal/record"
)

func mustSchema(t *testing.T, fields []Field) *Schema {
	t.Helper()
	s, err := New(fields)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func productSchema(t *testing.T) *Schema {
	return mustSchema(t, []Field{
		{Name: "sku", Kind: String},
		{Name: "price", Kind: Float},
		{Name: "qty", Kind: Int},
	})
}

func TestCoerce_AllFieldsTyped(t *testing.T) {
	s := productSchema(t)
	raw := record.Raw{Row: 2, Fields: []string{"sku", "price", "qty"}, Values: []string{"A-01", "9.5", "3"}}

	rec, err := s.Coerce(raw)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	vals := rec.Values()
	if vals[0] != "A-01" {
		t.Fatalf("sku: got %v", vals[0])
	}
	if vals[1] != 9.5 {
		t.Fatalf("price: got %v", vals[1])
	}
	if vals[2] != int64(3) {
		t.Fatalf("qty: got %v (%T)", vals[2], vals[2])
	}
}

func TestCoerce_BadValueReportsField(t *testing.T) {
	s := productSchema(t)
	raw := record.Raw{Row: 3, Fields: []string{"sku", "price", "qty"}, Values: []string{"A-02", "not_a_number", "2"}}

	_, err := s.Coerce(raw)
	if err == nil {
		t.Fatal("expected coercion error")
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FieldError, got %T", err)
	}
	if fe.Field != "price" || fe.Value != "not_a_number" {
		t.Fatalf("unexpected FieldError: %+v", fe)
	}
	if errors.Is(err, ErrMissingField) {
		t.Fatal("bad value must not report as missing field")
	}
}

func TestCoerce_ShortRowIsMissingField(t *testing.T) {
	s := productSchema(t)
	raw := record.Raw{Row: 4, Fields: []string{"sku", "price", "qty"}, Values: []string{"A-03", "12.0"}}

	_, err := s.Coerce(raw)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("want ErrMissingField, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "qty" {
		t.Fatalf("missing field should be qty: %v", err)
	}
}

func TestCoerce_FieldOrderFollowsSchemaNotInput(t *testing.T) {
	s := productSchema(t)
	raw := record.Raw{Row: 2, Fields: []string{"qty", "sku", "price"}, Values: []string{"3", "A-01", "9.5"}}

	rec, err := s.Coerce(raw)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	want := []string{"sku", "price", "qty"}
	for i, f := range rec.Fields() {
		if f != want[i] {
			t.Fatalf("field %d: want %s, got %s", i, want[i], f)
		}
	}
}

func TestNew_RejectsBadSchemas(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("empty schema must fail")
	}
	if _, err := New([]Field{{Name: "a", Kind: String}, {Name: "a", Kind: Int}}); err == nil {
		t.Fatal("duplicate field must fail")
	}
	if _, err := New([]Field{{Name: "a", Kind: Kind("decimal")}}); err == nil {
		t.Fatal("unknown kind must fail")
	}
}
