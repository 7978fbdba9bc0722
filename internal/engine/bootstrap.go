package engine

import (
	"context"
	"fmt"

	"rowsift/internal/pipeline"
	"rowsift/internal/telemetry"
)

type Config struct {
	MetricsPort int
	JobYml      string
}

func Bootstrap(_ context.Context, cfg Config) (*Engine, error) {
	if cfg.JobYml == "" {
		return nil, fmt.Errorf("engine: job file required")
	}

	// 1. compile the job
	runner, err := pipeline.Compile(cfg.JobYml)
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}

	// 2. metrics
	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	return &Engine{runner: runner}, nil
}
