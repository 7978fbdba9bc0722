// Package diag is the diagnostic surface of a run. The runner reports
// per-row rejections and the completion summary through a Recorder instead
// of logging directly, so tests and embedders can capture them.
package diag

import (
	"log/slog"

	"rowsift/internal/logging"
)

type Severity int8

const (
	Info Severity = iota
	Warn
)

func (s Severity) String() string {
	if s == Warn {
		return "warn"
	}
	return "info"
}

// Recorder accepts one diagnostic entry. Context keys are stable per
// message kind; see the runner for the emitted set.
type Recorder interface {
	Record(sev Severity, msg string, ctx map[string]any)
}

// SlogRecorder forwards diagnostics to a slog logger.
type SlogRecorder struct {
	l *slog.Logger
}

func NewSlogRecorder(l *slog.Logger) *SlogRecorder {
	if l == nil {
		l = logging.L()
	}
	return &SlogRecorder{l: l}
}

func (r *SlogRecorder) Record(sev Severity, msg string, ctx map[string]any) {
	args := make([]any, 0, len(ctx)*2)
	for k, v := range ctx {
		args = append(args, k, v)
	}
	if sev == Warn {
		r.l.Warn(msg, args...)
		return
	}
	r.l.Info(msg, args...)
}
