package record

// Raw is one unparsed input row: field names paired with raw string values,
// in source order. Row is the 1-based line number used in diagnostics
// (row 1 is the header for headered sources).
type Raw struct {
	Row    int
	Fields []string
	Values []string
}

// Get returns the raw value for a field, or false when the row is short or
// the field is unknown.
func (r Raw) Get(name string) (string, bool) {
	for i, f := range r.Fields {
		if f == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return "", false
}

// Map renders the row as a field→value map for diagnostic payloads.
func (r Raw) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for i, f := range r.Fields {
		if i < len(r.Values) {
			m[f] = r.Values[i]
		}
	}
	return m
}

// Record is a fully coerced row. Field order is kept separate from the
// values because column order matters to the sinks.
type Record struct {
	fields []string
	values []any
}

func New(fields []string, values []any) Record {
	return Record{fields: fields, values: values}
}

func (r Record) Len() int { return len(r.fields) }

func (r Record) Fields() []string { return r.fields }

func (r Record) Values() []any { return r.values }

func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.fields))
	for i, f := range r.fields {
		m[f] = r.values[i]
	}
	return m
}
