package vector

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predeclared returns the configuration constants as Starlark values.
func (cfg Config) Predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for key, value := range cfg.Constants() {
		pred[key] = starlark.MakeInt64(value)
	}
	return pred
}

// Eval evaluates a constant integer expression such as "-(1 << 31)" or
// "UMAX". The result is returned as a starlark.Int so that values wider
// than 64 bits can still be reported.
func (cfg Config) Eval(expr string) (value starlark.Int, err error) {
	thread := starlark.Thread{Name: "sample"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, cfg.Predeclared())
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrFieldType
		return
	}
	value, ok = st_rc.(starlark.Int)
	if !ok {
		err = ErrFieldType
		return
	}

	return
}
