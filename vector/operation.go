// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"iter"
	"slices"

	"github.com/ezrec/alutv/internal"
)

// Record is a single operation as delivered by a dataset loader, before any
// of its fields have been checked.
//
// Mappings in Data are map[string]any, sequences are []any, and integers are
// int64 (or *big.Int when they do not fit).
type Record struct {
	Name string // Operation name, unique within a dataset.
	Data any    // Untyped operation body.
}

// Sample is one test case of an operation.
type Sample struct {
	A, B, C int64 // Operands and result.

	Z     bool // Zero flag.
	N     bool // Negative flag.
	CFlag bool // Carry flag.
	V     bool // Overflow flag.
}

// Operation is a validated operation with its opcode and samples.
type Operation struct {
	Name    string
	Opcode  string
	Samples []Sample
}

func flagBit(flag bool) string {
	if flag {
		return "1"
	}
	return "0"
}

// Row returns the single-bit fields of sample index in column order: the
// opcode bits, then A, B and C interleaved from the most significant
// position down, then the Z, N, C and V flags.
func (op *Operation) Row(cfg Config, index int) (fields []string, err error) {
	sample := op.Samples[index]

	var operand [3]iter.Seq[string]
	for n, value := range []int64{sample.A, sample.B, sample.C} {
		var bits string
		bits, err = Encode(value, cfg.VectorBits)
		if err != nil {
			err = ErrSample{Operation: op.Name, Field: sampleFields[n], Index: index, Err: err}
			return
		}
		operand[n] = internal.IterSeqString(bits)
	}

	flags := slices.Values([]string{
		flagBit(sample.Z), flagBit(sample.N), flagBit(sample.CFlag), flagBit(sample.V),
	})

	fields = slices.Collect(internal.IterSeqConcat(
		internal.IterSeqString(op.Opcode),
		internal.IterSeqInterleave(operand[:]...),
		flags,
	))

	return
}

// Rows encodes every sample of the operation, in order.
func (op *Operation) Rows(cfg Config) (rows [][]string, err error) {
	rows = make([][]string, 0, len(op.Samples))
	for index := range op.Samples {
		var fields []string
		fields, err = op.Row(cfg, index)
		if err != nil {
			rows = nil
			return
		}
		rows = append(rows, fields)
	}

	return
}
