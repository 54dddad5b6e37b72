// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dataset loads operation datasets into vector.Records, keeping the
// order in which operations are declared.
//
// Two layouts are accepted. The keyed layout maps each operation name to its
// "inputs" and "outputs" sections, with the opcode in inputs.encoding. The
// split layout has a top level "encoding" mapping of operation name to
// opcode, and a "test_vectors" mapping holding the sections; each opcode is
// merged into the inputs section of its operation.
package dataset

import (
	"io"
	"os"

	"github.com/ezrec/alutv/vector"
)

const (
	KEY_ENCODING     = "encoding"
	KEY_TEST_VECTORS = "test_vectors"
	KEY_OPERATIONS   = "operations"
)

// member is one key of an ordered mapping.
type member struct {
	key   string
	value any
}

// object is a mapping that remembers the order of its keys.
type object []member

func (obj object) get(key string) (value any, ok bool) {
	for _, m := range obj {
		if m.key == key {
			return m.value, true
		}
	}
	return
}

// set replaces the value of an existing key in place, or appends it.
func (obj *object) set(key string, value any) {
	for n, m := range *obj {
		if m.key == key {
			(*obj)[n].value = value
			return
		}
	}
	*obj = append(*obj, member{key: key, value: value})
}

// plain converts ordered mappings into map[string]any, recursively.
func plain(value any) any {
	switch v := value.(type) {
	case object:
		out := make(map[string]any, len(v))
		for _, m := range v {
			out[m.key] = plain(m.value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for n, elem := range v {
			out[n] = plain(elem)
		}
		return out
	}
	return value
}

// records turns a decoded top level value into records.
func records(top any) (recs []vector.Record, err error) {
	root, ok := top.(object)
	if !ok {
		err = ErrTopLevel
		return
	}

	raw, split := root.get(KEY_TEST_VECTORS)
	if !split {
		for _, m := range root {
			recs = append(recs, vector.Record{Name: m.key, Data: plain(m.value)})
		}
		return
	}

	vectors, ok := raw.(object)
	if !ok {
		err = ErrTestVectors
		return
	}

	encoding := object{}
	if raw, ok := root.get(KEY_ENCODING); ok {
		encoding, ok = raw.(object)
		if !ok {
			err = ErrEncoding
			return
		}
	}

	for _, m := range vectors {
		data := plain(m.value)
		opcode, has := encoding.get(m.key)
		if body, ok := data.(map[string]any); ok && has {
			if inputs, ok := body[vector.FIELD_INPUTS].(map[string]any); ok {
				if _, ok := inputs[vector.FIELD_ENCODING]; !ok {
					inputs[vector.FIELD_ENCODING] = plain(opcode)
				}
			}
		}
		recs = append(recs, vector.Record{Name: m.key, Data: data})
	}

	return
}

// Loader reads datasets of one format.
type Loader struct {
	Format Format        // Dataset file format.
	Config vector.Config // Constants predeclared for Starlark datasets.
}

// Decode parses a dataset from r. name is used in diagnostics. Every
// failure is an *ErrLoad.
func (ld *Loader) Decode(name string, r io.Reader) (recs []vector.Record, err error) {
	defer func() {
		if err != nil {
			recs = nil
			err = &ErrLoad{Path: name, Err: err}
		}
	}()

	var top any
	switch ld.Format {
	case FORMAT_JSON:
		top, err = decodeJSON(r)
	case FORMAT_YAML:
		top, err = decodeYAML(r)
	case FORMAT_STARLARK:
		top, err = decodeStarlark(name, r, ld.Config)
	default:
		err = ErrFormat(ld.Format.String())
	}
	if err != nil {
		return
	}

	return records(top)
}

// Load reads the dataset at path.
func (ld *Loader) Load(path string) (recs []vector.Record, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	return ld.Decode(path, inf)
}

// Load reads the dataset at path, choosing the format from its extension.
func Load(path string, cfg vector.Config) (recs []vector.Record, err error) {
	ld := &Loader{Format: FormatOf(path), Config: cfg}
	return ld.Load(path)
}
