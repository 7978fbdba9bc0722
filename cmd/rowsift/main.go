package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rowsift/internal/engine"
	"rowsift/internal/logging"
	"rowsift/source"
	csvsrc "rowsift/source/csv"
	ndjsonsrc "rowsift/source/ndjson"

	// sinks self-register
	_ "rowsift/sink/kafka"
	_ "rowsift/sink/ndjson"
	_ "rowsift/sink/parquet"
	_ "rowsift/sink/stdout"
)

func main() {
	logging.InitFromEnv()

	cfg := engine.Config{
		MetricsPort: 9100,
		JobYml:      "job.yml",
	}
	if len(os.Args) > 1 {
		cfg.JobYml = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source.Register("csv", func() source.Adapter { return &csvsrc.Driver{} })
	source.Register("ndjson", func() source.Adapter { return &ndjsonsrc.Driver{} })

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if _, err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
