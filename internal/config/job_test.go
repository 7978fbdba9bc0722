package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJobSpec_ResolvesRelativeSourceConfigAndSchema(t *testing.T) {
	dir := t.TempDir()
	job := []byte(`schema_version: v1
source:
  kind: csv
  config: source.yml
schema:
  - { name: sku, type: string }
  - { name: price, type: float }
sinks: [ndjson]
`)
	if err := os.WriteFile(filepath.Join(dir, "job.yml"), job, 0o644); err != nil {
		t.Fatalf("write job: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "source.yml"), []byte("schema_version: v1\n"), 0o644); err != nil {
		t.Fatalf("write source cfg: %v", err)
	}

	cfg, abs, err := LoadJobSpec(filepath.Join(dir, "job.yml"))
	if err != nil {
		t.Fatalf("LoadJobSpec: %v", err)
	}
	if cfg.SchemaVersion != SupportedSchema {
		t.Fatalf("want schema %s, got %s", SupportedSchema, cfg.SchemaVersion)
	}
	if abs == "" || !filepath.IsAbs(abs) {
		t.Fatalf("want absolute source config path, got %q", abs)
	}
	if len(cfg.Schema) != 2 || cfg.Schema[0].Name != "sku" || cfg.Schema[1].Type != "float" {
		t.Fatalf("unexpected schema block: %+v", cfg.Schema)
	}
}

func TestLoadJobSpec_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	job := []byte(`schema_version: v999
source: { kind: csv, config: cf.yml }
schema: [{ name: sku, type: string }]
sinks: [ndjson]
`)
	if err := os.WriteFile(filepath.Join(dir, "job.yml"), job, 0o644); err != nil {
		t.Fatalf("write job: %v", err)
	}
	if _, _, err := LoadJobSpec(filepath.Join(dir, "job.yml")); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
