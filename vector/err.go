package vector

import (
	"fmt"
	"strconv"

	"github.com/ezrec/alutv/translate"
)

var f = translate.From

var (
	// Schema errors
	ErrFieldMissing  = translate.Error("field missing")
	ErrFieldType     = translate.Error("field ill-typed")
	ErrOpcodeInvalid = translate.Error("opcode invalid")

	// Configuration errors
	ErrConfigVectorBits = translate.Error("vector bits out of range")
	ErrConfigOpcodeBits = translate.Error("opcode bits out of range")
	ErrConfigGap        = translate.Error("column gap must not be empty")

	// Decode errors
	ErrBitInvalid = translate.Error("bit string invalid")
)

// ErrSchema reports a required field of an operation that is absent or
// cannot be read as the expected type.
type ErrSchema struct {
	Operation string
	Field     string
	Err       error
}

func (err ErrSchema) Error() string {
	return f("%v: %v %v", err.Operation, err.Field, err.Err)
}

func (err ErrSchema) Unwrap() error {
	return err.Err
}

// FieldLength is the observed length of one sample array.
type FieldLength struct {
	Field  string
	Length int
}

// ErrLengthMismatch reports sample arrays of an operation with unequal lengths.
type ErrLengthMismatch struct {
	Operation string
	Lengths   []FieldLength
}

func (err ErrLengthMismatch) Error() string {
	var detail string
	for n, fl := range err.Lengths {
		if n > 0 {
			detail += ", "
		}
		detail += fmt.Sprintf("%s=%d", fl.Field, fl.Length)
	}
	return f("%v: mismatching lengths (%v)", err.Operation, detail)
}

// ErrRange reports a value that is not representable in Width bits.
type ErrRange struct {
	Value string
	Width int
}

// Integers are formatted before translation; the printer would group their
// digits by locale, and diagnostics are written into the table.
func (err ErrRange) Error() string {
	return f("%v out of range for %v bits", err.Value, strconv.Itoa(err.Width))
}

// ErrSample locates a bad sample value within an operation.
type ErrSample struct {
	Operation string
	Field     string
	Index     int
	Err       error
}

func (err ErrSample) Error() string {
	return f("%v: %v[%v] %v", err.Operation, err.Field, strconv.Itoa(err.Index), err.Err)
}

func (err ErrSample) Unwrap() error {
	return err.Err
}
