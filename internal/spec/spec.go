package spec

import "gopkg.in/yaml.v3"

// SinkConfigs keeps the per-sink blocks as raw nodes; the compiler decodes
// each into the driver's own config type.
type SinkConfigs struct {
	NDJSON  yaml.Node `yaml:"ndjson"`
	Parquet yaml.Node `yaml:"parquet"`
	Kafka   yaml.Node `yaml:"kafka"`
	Stdout  yaml.Node `yaml:"stdout"`
}

// FieldSpec is one entry of the ordered schema block.
type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "string", "int", "float"
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Source struct {
		Kind   string `yaml:"kind"`   // "csv", "ndjson"
		Config string `yaml:"config"` // driver config path, relative to the job file
	} `yaml:"source"`

	// Ordered field list applied to every row; order is authoritative
	// for output columns.
	Schema []FieldSpec `yaml:"schema"`

	Sinks       []string    `yaml:"sinks"`
	SinkConfigs SinkConfigs `yaml:"sink_configs"`
}
