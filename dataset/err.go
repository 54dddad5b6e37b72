package dataset

import (
	"github.com/ezrec/alutv/translate"
)

var f = translate.From

var (
	// Structure errors
	ErrEmpty       = translate.Error("no data")
	ErrTrailing    = translate.Error("trailing data after dataset")
	ErrTopLevel    = translate.Error("top level is not a mapping")
	ErrTestVectors = translate.Error("test_vectors is not a mapping")
	ErrEncoding    = translate.Error("encoding is not a mapping")
	ErrKeyType     = translate.Error("mapping key is not a string")
	ErrNoDataset   = translate.Error("script defines neither test_vectors nor operations")
)

// ErrLoad is fatal: the dataset could not be read or parsed, and nothing
// has been written.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrFormat is an unrecognised dataset format name.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("unknown dataset format '%v'", string(err))
}

// ErrValueType is a value of a type that has no dataset equivalent.
type ErrValueType string

func (err ErrValueType) Error() string {
	return f("unsupported value of type %v", string(err))
}
