package dataset

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alutv/vector"
)

// decodeStarlark executes a Starlark script. The script assigns either
// test_vectors (and optionally encoding) in the split layout, or
// operations in the keyed layout. The configuration constants are
// predeclared.
func decodeStarlark(name string, r io.Reader, cfg vector.Config) (value any, err error) {
	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, r, cfg.Predeclared())
	if err != nil {
		return
	}

	if ops, ok := globals[KEY_OPERATIONS]; ok {
		if _, split := globals[KEY_TEST_VECTORS]; !split {
			return starlarkValue(ops)
		}
	}

	if _, ok := globals[KEY_TEST_VECTORS]; !ok {
		err = ErrNoDataset
		return
	}

	top := object{}
	for _, key := range []string{KEY_ENCODING, KEY_TEST_VECTORS} {
		global, ok := globals[key]
		if !ok {
			continue
		}
		var elem any
		elem, err = starlarkValue(global)
		if err != nil {
			return
		}
		top.set(key, elem)
	}

	value = top
	return
}

func starlarkValue(v starlark.Value) (value any, err error) {
	switch sv := v.(type) {
	case *starlark.Dict:
		obj := object{}
		for _, item := range sv.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				err = ErrKeyType
				return
			}
			var elem any
			elem, err = starlarkValue(item[1])
			if err != nil {
				return
			}
			obj.set(key.GoString(), elem)
		}
		value = obj
	case starlark.String:
		value = sv.GoString()
	case *starlark.List, starlark.Tuple:
		seq := v.(starlark.Indexable)
		arr := make([]any, 0, seq.Len())
		for n := range seq.Len() {
			var elem any
			elem, err = starlarkValue(seq.Index(n))
			if err != nil {
				return
			}
			arr = append(arr, elem)
		}
		value = arr
	case starlark.Int:
		if i64, ok := sv.Int64(); ok {
			value = i64
		} else {
			value = sv.BigInt()
		}
	case starlark.Float:
		value = float64(sv)
	case starlark.Bool:
		value = bool(sv)
	case starlark.NoneType:
		value = nil
	default:
		err = ErrValueType(v.Type())
	}

	return
}
