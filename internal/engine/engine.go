package engine

import (
	"context"

	"rowsift/internal/logging"
	"rowsift/internal/pipeline"
)

type Engine struct {
	runner *pipeline.Runner
}

// Run executes the transform to completion and returns its result. This is a
// run-to-completion job, not a resident server: the process is expected to
// exit once Run returns.
func (e *Engine) Run(ctx context.Context) (pipeline.Result, error) {
	defer func() { _ = e.runner.Close() }()

	log := logging.With("run_id", e.runner.ID())
	log.Info("run starting")

	res, err := e.runner.Run(ctx)
	if err != nil {
		log.Error("run failed", "err", err)
		return pipeline.Result{}, err
	}
	return res, nil
}
