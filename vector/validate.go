// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"math"
	"math/big"
	"strconv"
)

// Field names of a dataset record.
const (
	FIELD_INPUTS    = "inputs"
	FIELD_OUTPUTS   = "outputs"
	FIELD_ENCODING  = "encoding"
	FIELD_A_VECTORS = "a_vectors"
	FIELD_B_VECTORS = "b_vectors"
	FIELD_C_OUTPUT  = "c_output"
	FIELD_Z_FLAG    = "z_flag"
	FIELD_N_FLAG    = "n_flag"
	FIELD_C_FLAG    = "c_flag"
	FIELD_V_FLAG    = "v_flag"
)

// sampleFields are the operand and result arrays, in Sample order.
var sampleFields = []string{FIELD_A_VECTORS, FIELD_B_VECTORS, FIELD_C_OUTPUT}

// arrayField is a sample array and the section it lives in.
type arrayField struct {
	section string
	name    string
}

var arrayFields = []arrayField{
	{FIELD_INPUTS, FIELD_A_VECTORS},
	{FIELD_INPUTS, FIELD_B_VECTORS},
	{FIELD_OUTPUTS, FIELD_C_OUTPUT},
	{FIELD_OUTPUTS, FIELD_Z_FLAG},
	{FIELD_OUTPUTS, FIELD_N_FLAG},
	{FIELD_OUTPUTS, FIELD_C_FLAG},
	{FIELD_OUTPUTS, FIELD_V_FLAG},
}

// Validate projects an untyped Record into an Operation.
//
// It fails with ErrSchema when a required field is absent or ill-typed,
// with ErrLengthMismatch when the seven sample arrays differ in length, and
// with ErrSample wrapping ErrRange when a value does not fit its width.
// On success every sample index is safe to encode with cfg.
func Validate(cfg Config, rec Record) (op *Operation, err error) {
	schema := func(field string, cause error) error {
		return ErrSchema{Operation: rec.Name, Field: field, Err: cause}
	}

	body, ok := rec.Data.(map[string]any)
	if !ok {
		err = schema(FIELD_INPUTS, ErrFieldType)
		return
	}

	sections := map[string]map[string]any{}
	for _, name := range []string{FIELD_INPUTS, FIELD_OUTPUTS} {
		raw, ok := body[name]
		if !ok {
			err = schema(name, ErrFieldMissing)
			return
		}
		section, ok := raw.(map[string]any)
		if !ok {
			err = schema(name, ErrFieldType)
			return
		}
		sections[name] = section
	}

	raw, ok := sections[FIELD_INPUTS][FIELD_ENCODING]
	if !ok {
		err = schema(FIELD_ENCODING, ErrFieldMissing)
		return
	}
	opcode, ok := raw.(string)
	if !ok {
		err = schema(FIELD_ENCODING, ErrFieldType)
		return
	}
	if !IsBits(opcode, cfg.OpcodeBits) {
		err = schema(FIELD_ENCODING, ErrOpcodeInvalid)
		return
	}

	arrays := make([][]any, len(arrayFields))
	for n, af := range arrayFields {
		raw, ok := sections[af.section][af.name]
		if !ok {
			err = schema(af.name, ErrFieldMissing)
			return
		}
		arrays[n], ok = raw.([]any)
		if !ok {
			err = schema(af.name, ErrFieldType)
			return
		}
	}

	count := len(arrays[0])
	for _, array := range arrays[1:] {
		if len(array) != count {
			mismatch := ErrLengthMismatch{Operation: rec.Name}
			for n, af := range arrayFields {
				mismatch.Lengths = append(mismatch.Lengths, FieldLength{Field: af.name, Length: len(arrays[n])})
			}
			err = mismatch
			return
		}
	}

	op = &Operation{
		Name:    rec.Name,
		Opcode:  opcode,
		Samples: make([]Sample, count),
	}

	for index := range count {
		var values [7]int64
		for n, af := range arrayFields {
			width := cfg.VectorBits
			if n >= len(sampleFields) {
				width = 1
			}
			values[n], err = cfg.sampleValue(arrays[n][index], width)
			if err == nil && width == 1 && values[n] != 0 && values[n] != 1 {
				err = ErrRange{Value: strconv.FormatInt(values[n], 10), Width: 1}
			}
			if err != nil {
				err = ErrSample{Operation: rec.Name, Field: af.name, Index: index, Err: err}
				op = nil
				return
			}
		}

		op.Samples[index] = Sample{
			A: values[0], B: values[1], C: values[2],
			Z: values[3] == 1, N: values[4] == 1, CFlag: values[5] == 1, V: values[6] == 1,
		}
	}

	return
}

// sampleValue converts one array element to an integer that fits width bits.
func (cfg Config) sampleValue(raw any, width int) (value int64, err error) {
	outOfRange := func(text string) error {
		return ErrRange{Value: text, Width: width}
	}

	switch v := raw.(type) {
	case int64:
		value = v
	case int:
		value = int64(v)
	case *big.Int:
		if !v.IsInt64() {
			err = outOfRange(v.String())
			return
		}
		value = v.Int64()
	case float64:
		if math.Trunc(v) != v || math.IsInf(v, 0) {
			err = ErrFieldType
			return
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			err = outOfRange(strconv.FormatFloat(v, 'f', -1, 64))
			return
		}
		value = int64(v)
	case string:
		st_int, _err := cfg.Eval(v)
		if _err != nil {
			err = ErrFieldType
			return
		}
		var ok bool
		value, ok = st_int.Int64()
		if !ok {
			err = outOfRange(st_int.String())
			return
		}
	default:
		err = ErrFieldType
		return
	}

	if !inRange(value, width) {
		err = outOfRange(strconv.FormatInt(value, 10))
	}

	return
}
