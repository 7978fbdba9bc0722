package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rowsift/internal/diag"
	"rowsift/internal/record"
	"rowsift/internal/schema"
	"rowsift/internal/telemetry"
	"rowsift/sink"
	"rowsift/source"
)

// Result is what a completed run reports. Accepted + Rejected always equals
// the number of data rows the source produced.
type Result struct {
	Accepted int
	Rejected int
}

// Runner drives one source through the schema coercions into the bound
// sinks. The loop is strictly sequential: rows are coerced and pushed in
// input order, and the only cross-row state is the two counters.
type Runner struct {
	id     string
	schema *schema.Schema
	rec    diag.Recorder

	source source.Adapter
	sinks  []sink.Adapter
}

func NewRunner(s *schema.Schema, rec diag.Recorder) *Runner {
	if rec == nil {
		rec = diag.NewSlogRecorder(nil)
	}
	return &Runner{id: uuid.NewString(), schema: s, rec: rec}
}

func (r *Runner) ID() string { return r.id }

func (r *Runner) AddSink(s sink.Adapter)     { r.sinks = append(r.sinks, s) }
func (r *Runner) SetSource(s source.Adapter) { r.source = s }

/*──────── record routing ───────*/

func (r *Runner) pushRecord(rec record.Record) error {
	for _, s := range r.sinks {
		if err := s.Push(rec); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the transform to completion. A coercion failure rejects the
// row and continues; a source read error or sink write/finalize error is
// fatal, returns immediately, and reports no result. On the fatal path batch
// sinks are never finalized, so their output is absent rather than
// plausible-looking and wrong.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.source == nil {
		return Result{}, errors.New("runner: no source configured")
	}
	if len(r.sinks) == 0 {
		return Result{}, errors.New("runner: no sinks configured")
	}

	var res Result
	err := r.source.Run(ctx, func(raw record.Raw) error {
		rec, cerr := r.schema.Coerce(raw)
		if cerr != nil {
			res.Rejected++
			telemetry.RowsRejected.Inc()
			r.rec.Record(diag.Warn, "row rejected", rejectionContext(raw, cerr))
			return nil
		}
		if err := r.pushRecord(rec); err != nil {
			return err
		}
		res.Accepted++
		telemetry.RowsAccepted.Inc()
		return nil
	})
	if err != nil {
		telemetry.Runs.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("run %s: %w", r.id, err)
	}

	for _, s := range r.sinks {
		if err := s.Close(); err != nil {
			telemetry.Runs.WithLabelValues("error").Inc()
			return Result{}, fmt.Errorf("run %s: %w", r.id, err)
		}
	}

	telemetry.Runs.WithLabelValues("ok").Inc()
	r.rec.Record(diag.Info, "run complete", map[string]any{
		"run_id":   r.id,
		"accepted": res.Accepted,
		"rejected": res.Rejected,
	})
	return res, nil
}

func (r *Runner) Close() error {
	if r.source != nil {
		return r.source.Close()
	}
	return nil
}

func rejectionContext(raw record.Raw, cerr error) map[string]any {
	ctx := map[string]any{
		"row": raw.Row,
		"raw": raw.Map(),
		"err": cerr.Error(),
	}
	var fe *schema.FieldError
	if errors.As(cerr, &fe) {
		ctx["field"] = fe.Field
		ctx["missing"] = errors.Is(fe.Err, schema.ErrMissingField)
	}
	return ctx
}
