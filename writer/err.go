package writer

import (
	"github.com/ezrec/alutv/translate"
)

var f = translate.From

// ErrSink reports a failed write to the output.
type ErrSink struct {
	State State
	Err   error
}

func (err *ErrSink) Error() string {
	return f("output %v: %v", err.State.String(), err.Err)
}

func (err *ErrSink) Unwrap() error {
	return err.Err
}
