package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"rowsift/internal/config"
	"rowsift/internal/diag"
	"rowsift/internal/schema"
	"rowsift/sink"
	kafkasink "rowsift/sink/kafka"
	ndjsonsink "rowsift/sink/ndjson"
	parquetsink "rowsift/sink/parquet"
	"rowsift/sink/stdout"
	"rowsift/source"
)

// Compile builds a ready-to-run Runner from a job YAML. Every schema, source
// and sink problem surfaces here, before a single row is read.
func Compile(path string) (*Runner, error) {
	cfg, confPath, err := config.LoadJobSpec(path)
	if err != nil {
		return nil, err
	}

	fields := make([]schema.Field, len(cfg.Schema))
	for i, f := range cfg.Schema {
		fields[i] = schema.Field{Name: f.Name, Kind: schema.Kind(f.Type)}
	}
	sch, err := schema.New(fields)
	if err != nil {
		return nil, err
	}

	r := NewRunner(sch, diag.NewSlogRecorder(nil))

	src, err := source.NewAdapter(cfg.Source.Kind)
	if err != nil {
		return nil, err
	}
	sc, err := config.LoadSourceConfig(confPath)
	if err != nil {
		return nil, err
	}
	if err := src.Configure(sc); err != nil {
		return nil, err
	}
	r.SetSource(src)

	for _, name := range cfg.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return nil, err
		}

		switch name {
		case "ndjson":
			var c ndjsonsink.Config
			if err = decodeBlock(cfg.SinkConfigs.NDJSON, &c); err == nil {
				err = sDrv.Configure(c)
			}
		case "parquet":
			var c parquetsink.Config
			if err = decodeBlock(cfg.SinkConfigs.Parquet, &c); err == nil {
				c.Fields = sch.Fields()
				err = sDrv.Configure(c)
			}
		case "kafka":
			var c kafkasink.Config
			if err = decodeBlock(cfg.SinkConfigs.Kafka, &c); err == nil {
				err = sDrv.Configure(c)
			}
		case "stdout":
			var c stdout.Config
			if err = decodeBlock(cfg.SinkConfigs.Stdout, &c); err == nil {
				err = sDrv.Configure(c)
			}
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return nil, err
		}
		r.AddSink(sDrv)
	}
	if len(cfg.Sinks) == 0 {
		return nil, fmt.Errorf("job %s: no sinks listed", path)
	}
	return r, nil
}

// decodeBlock tolerates an absent sink block; the driver's own validation
// decides whether the zero config is usable.
func decodeBlock(n yaml.Node, out any) error {
	if n.Kind == 0 {
		return nil
	}
	return n.Decode(out)
}
