// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package writer streams a dataset of operations to a test-vector table.
//
// A Writer moves through STATE_INIT, STATE_HEADER_WRITTEN, one
// STATE_PROCESSING step per operation, and STATE_DONE. An operation that
// fails validation is replaced in the table by a single comment line; the
// run carries on with the next operation.
package writer

import (
	"io"

	"go.uber.org/zap"

	"github.com/ezrec/alutv/table"
	"github.com/ezrec/alutv/vector"
)

// Result is the outcome of one operation.
type Result struct {
	Name string // Operation name.
	Rows int    // Data rows written.
	Err  error  // Reason the operation was skipped, or nil.
}

// Writer state. Configuration + dataset + output sink.
type Writer struct {
	Config  vector.Config   // Run configuration.
	Records []vector.Record // Operations, in dataset order.
	Output  io.Writer       // Output sink, owned by the writer for the run.

	Layout  *table.Layout // Column layout, computed once.
	State   State         // Current state.
	Results []Result      // Outcome of each processed operation.

	index int
}

// NewWriter creates a new writer for records.
func NewWriter(cfg vector.Config, records []vector.Record, output io.Writer) (w *Writer, err error) {
	err = cfg.Check()
	if err != nil {
		return
	}

	w = &Writer{
		Config:  cfg,
		Records: records,
		Output:  output,
		Layout:  table.NewLayout(cfg.OpcodeBits, cfg.VectorBits, cfg.Gap),
		State:   STATE_INIT,
	}

	return
}

// write emits exactly one line to the output.
func (w *Writer) write(line string) (err error) {
	_, err = io.WriteString(w.Output, line)
	if err != nil {
		err = &ErrSink{State: w.State, Err: err}
	}
	return
}

// Step performs a single state transition. Only output errors are
// returned; operation failures are recorded in Results.
func (w *Writer) Step() (done bool, err error) {
	switch w.State {
	case STATE_INIT:
		err = w.write(w.Layout.Header)
		if err != nil {
			return
		}
		err = w.write(w.Layout.RenderSeparator())
		if err != nil {
			return
		}
		w.State = STATE_HEADER_WRITTEN
	case STATE_HEADER_WRITTEN, STATE_PROCESSING:
		if w.index >= len(w.Records) {
			w.State = STATE_DONE
			w.summary()
			done = true
			return
		}
		w.State = STATE_PROCESSING
		rec := w.Records[w.index]
		w.index++
		err = w.process(rec)
	case STATE_DONE:
		done = true
	}

	return
}

// Run steps the writer until it is done.
func (w *Writer) Run() (err error) {
	var done bool
	for !done {
		done, err = w.Step()
		if err != nil {
			return
		}
	}

	return
}

// process writes the rows of one operation, or a diagnostic in their place.
func (w *Writer) process(rec vector.Record) (err error) {
	result := Result{Name: rec.Name}

	var rows [][]string
	op, verr := vector.Validate(w.Config, rec)
	if verr == nil {
		rows, verr = op.Rows(w.Config)
	}

	if verr != nil {
		result.Err = verr
		w.Results = append(w.Results, result)
		Logger().Warn("operation skipped",
			zap.String("operation", rec.Name),
			zap.Error(verr))
		err = w.write(table.RenderComment(verr.Error()))
		if err != nil {
			return
		}
		return w.write(w.Layout.RenderSeparator())
	}

	for _, fields := range rows {
		err = w.write(w.Layout.RenderRow(fields))
		if err != nil {
			w.Results = append(w.Results, result)
			return
		}
		result.Rows++
	}

	w.Results = append(w.Results, result)
	Logger().Debug("operation written",
		zap.String("operation", rec.Name),
		zap.String("opcode", op.Opcode),
		zap.Int("rows", result.Rows))

	return w.write(w.Layout.RenderSeparator())
}

// Failed returns the results of operations that were skipped.
func (w *Writer) Failed() (failed []Result) {
	for _, result := range w.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return
}

// Rows returns the total number of data rows written.
func (w *Writer) Rows() (rows int) {
	for _, result := range w.Results {
		rows += result.Rows
	}
	return
}

func (w *Writer) summary() {
	Logger().Info("test vectors written",
		zap.Int("operations", len(w.Results)),
		zap.Int("rows", w.Rows()),
		zap.Int("failed", len(w.Failed())),
		zap.Int("width", w.Layout.Width))
}
