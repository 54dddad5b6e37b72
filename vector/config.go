package vector

const (
	VECTOR_BITS = 32     // Default operand and result width.
	OPCODE_BITS = 4      // Default opcode width.
	MAX_BITS    = 63     // Widest operand supported by the int64 sample domain.
	GAP         = "    " // Default gap between table columns.
)

// Config is the run-scoped configuration of the generator.
type Config struct {
	VectorBits int    `toml:"vector_bits"` // Width of A, B and C.
	OpcodeBits int    `toml:"opcode_bits"` // Width of the opcode field.
	Gap        string `toml:"gap"`         // Whitespace between table columns.
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		VectorBits: VECTOR_BITS,
		OpcodeBits: OPCODE_BITS,
		Gap:        GAP,
	}
}

// Check validates the configuration.
func (cfg Config) Check() (err error) {
	switch {
	case cfg.VectorBits < 1 || cfg.VectorBits > MAX_BITS:
		err = ErrConfigVectorBits
	case cfg.OpcodeBits < 1 || cfg.OpcodeBits > MAX_BITS:
		err = ErrConfigOpcodeBits
	case len(cfg.Gap) == 0:
		err = ErrConfigGap
	}

	return
}

// Columns returns the number of single-bit columns in a row.
func (cfg Config) Columns() int {
	return cfg.OpcodeBits + 3*cfg.VectorBits + 4
}

// Constants returns the integer names available to sample expressions and
// Starlark datasets.
func (cfg Config) Constants() map[string]int64 {
	width := uint(cfg.VectorBits)
	return map[string]int64{
		"VECTOR_BITS": int64(cfg.VectorBits),
		"OPCODE_BITS": int64(cfg.OpcodeBits),
		"MIN":         -(int64(1) << (width - 1)),
		"MAX":         (int64(1) << (width - 1)) - 1,
		"UMAX":        int64((uint64(1) << width) - 1),
	}
}
