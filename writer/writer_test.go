package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ezrec/alutv/translate"
	"github.com/ezrec/alutv/vector"
)

func ints(values ...int64) (out []any) {
	for _, v := range values {
		out = append(out, v)
	}
	return
}

func makeRecord(name string, encoding string, a, b, c, z, n, cf, v []any) vector.Record {
	return vector.Record{
		Name: name,
		Data: map[string]any{
			"inputs": map[string]any{
				"encoding":  encoding,
				"a_vectors": a,
				"b_vectors": b,
			},
			"outputs": map[string]any{
				"c_output": c,
				"z_flag":   z,
				"n_flag":   n,
				"c_flag":   cf,
				"v_flag":   v,
			},
		},
	}
}

func tinyConfig() vector.Config {
	return vector.Config{VectorBits: 2, OpcodeBits: 1, Gap: " "}
}

// lineRecorder keeps every Write call separately.
type lineRecorder struct {
	writes []string
}

func (lr *lineRecorder) Write(data []byte) (int, error) {
	lr.writes = append(lr.writes, string(data))
	return len(data), nil
}

// failWriter fails every write after the first limit writes.
type failWriter struct {
	limit int
	count int
}

var errDiskFull = errors.New("disk full")

func (fw *failWriter) Write(data []byte) (int, error) {
	if fw.count >= fw.limit {
		return 0, errDiskFull
	}
	fw.count++
	return len(data), nil
}

func TestWriterRun(t *testing.T) {
	assert := assert.New(t)

	records := []vector.Record{
		makeRecord("ADD", "0",
			ints(1, -1), ints(1, 0), ints(2, -1),
			ints(0, 0), ints(0, 1), ints(0, 0), ints(1, 0)),
		makeRecord("BAD", "1",
			ints(1, 2), ints(1), ints(0, 0),
			ints(0, 0), ints(0, 0), ints(0, 0), ints(0, 0)),
		makeRecord("AND", "1",
			ints(3), ints(1), ints(1),
			ints(0), ints(0), ints(0), ints(0)),
	}

	out := &lineRecorder{}
	w, err := NewWriter(tinyConfig(), records, out)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	err = w.Run()
	assert.NoError(err)
	assert.Equal(STATE_DONE, w.State)

	sep := "#" + strings.Repeat("-", 41) + "#\n"
	expected := []string{
		"OP0 A1  B1  C1  A0  B0  C0  Z   N   C   V  \n",
		sep,
		"0   0   0   1   1   1   0   0   0   0   1  \n",
		"0   1   0   1   1   0   1   0   1   0   0  \n",
		sep,
		"# BAD: mismatching lengths (a_vectors=2, b_vectors=1, c_output=2, z_flag=2, n_flag=2, c_flag=2, v_flag=2)\n",
		sep,
		"1   1   0   0   1   1   1   0   0   0   0  \n",
		sep,
	}
	// One Write per line.
	assert.Equal(expected, out.writes)

	assert.Equal([]Result{
		{Name: "ADD", Rows: 2},
		{Name: "BAD", Rows: 0, Err: w.Results[1].Err},
		{Name: "AND", Rows: 1},
	}, w.Results)
	assert.Equal(3, w.Rows())

	failed := w.Failed()
	assert.Len(failed, 1)
	var mismatch vector.ErrLengthMismatch
	assert.True(errors.As(failed[0].Err, &mismatch))
}

func TestWriterSkips(t *testing.T) {
	assert := assert.New(t)

	missing := makeRecord("NOFLAG", "0", ints(0), ints(0), ints(0), ints(0), ints(0), ints(0), ints(0))
	delete(missing.Data.(map[string]any)["outputs"].(map[string]any), "v_flag")

	table := [](struct {
		name    string
		rec     vector.Record
		comment string
	}){
		{"missing", missing, "# NOFLAG: v_flag field missing\n"},
		{"range", makeRecord("WIDE", "0", ints(4), ints(0), ints(0), ints(0), ints(0), ints(0), ints(0)),
			"# WIDE: a_vectors[0] 4 out of range for 2 bits\n"},
		{"opcode", makeRecord("OPC", "01", ints(0), ints(0), ints(0), ints(0), ints(0), ints(0), ints(0)),
			"# OPC: encoding opcode invalid\n"},
		{"not_mapping", vector.Record{Name: "JUNK", Data: "junk"},
			"# JUNK: inputs field ill-typed\n"},
	}

	for _, entry := range table {
		good := makeRecord("OK", "1", ints(0), ints(0), ints(0), ints(1), ints(0), ints(0), ints(0))

		buf := &bytes.Buffer{}
		w, err := NewWriter(tinyConfig(), []vector.Record{entry.rec, good}, buf)
		assert.NoError(err)
		assert.NoError(w.Run(), entry.name)

		lines := strings.SplitAfter(buf.String(), "\n")
		lines = lines[:len(lines)-1]

		// header, sep, comment, sep, row, sep
		if assert.Len(lines, 6, entry.name) {
			assert.Equal(entry.comment, lines[2], entry.name)
			assert.Equal(lines[1], lines[3], entry.name)
			assert.Equal("1   0   0   0   0   0   0   1   0   0   0  \n", lines[4], entry.name)
			assert.Equal(lines[1], lines[5], entry.name)
		}

		assert.Error(w.Results[0].Err, entry.name)
		assert.Equal(0, w.Results[0].Rows, entry.name)
		assert.NoError(w.Results[1].Err, entry.name)
		assert.Equal(1, w.Results[1].Rows, entry.name)
	}
}

func TestWriterDiagnosticLocale(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(translate.SetLanguage("de"))
	defer translate.SetLanguage("en-US")

	zeros := make([]int64, 1201)
	a := ints(zeros...)
	a[1200] = int64(9)

	rec := makeRecord("WIDE", "0",
		a, ints(zeros...), ints(zeros...),
		ints(zeros...), ints(zeros...), ints(zeros...), ints(zeros...))

	buf := &bytes.Buffer{}
	w, err := NewWriter(tinyConfig(), []vector.Record{rec}, buf)
	assert.NoError(err)
	assert.NoError(w.Run())

	lines := strings.SplitAfter(buf.String(), "\n")
	if assert.Len(lines, 5) {
		assert.Equal("# WIDE: a_vectors[1200] 9 out of range for 2 bits\n", lines[2])
	}
}

func TestWriterStep(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	w, err := NewWriter(vector.DefaultConfig(), []vector.Record{
		makeRecord("NOP", "0000", ints(), ints(), ints(), ints(), ints(), ints(), ints()),
	}, buf)
	assert.NoError(err)
	assert.Equal(STATE_INIT, w.State)
	assert.Equal("init", w.State.String())

	done, err := w.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(STATE_HEADER_WRITTEN, w.State)
	assert.Equal(w.Layout.Header+w.Layout.RenderSeparator(), buf.String())

	done, err = w.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(STATE_PROCESSING, w.State)
	assert.Equal([]Result{{Name: "NOP"}}, w.Results)

	done, err = w.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(STATE_DONE, w.State)

	size := buf.Len()
	done, err = w.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(size, buf.Len())

	// header, separator, and the empty operation's separator.
	assert.Equal(3, strings.Count(buf.String(), "\n"))
	assert.Equal("State(7)", State(7).String())
}

func TestWriterEmptyDataset(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	w, err := NewWriter(vector.DefaultConfig(), nil, buf)
	assert.NoError(err)
	assert.NoError(w.Run())
	assert.Equal(w.Layout.Header+w.Layout.RenderSeparator(), buf.String())
	assert.Empty(w.Results)
}

func TestWriterConfig(t *testing.T) {
	assert := assert.New(t)

	w, err := NewWriter(vector.Config{VectorBits: 99, OpcodeBits: 4, Gap: " "}, nil, &bytes.Buffer{})
	assert.Nil(w)
	assert.ErrorIs(err, vector.ErrConfigVectorBits)
}

func TestWriterSinkError(t *testing.T) {
	assert := assert.New(t)

	records := []vector.Record{
		makeRecord("ADD", "0", ints(1, 1), ints(1, 1), ints(1, 1), ints(0, 0), ints(0, 0), ints(0, 0), ints(0, 0)),
	}

	for limit := range 5 {
		w, err := NewWriter(tinyConfig(), records, &failWriter{limit: limit})
		assert.NoError(err)

		err = w.Run()
		assert.ErrorIs(err, errDiskFull, "limit %v", limit)

		var sink *ErrSink
		assert.True(errors.As(err, &sink), "limit %v", limit)
		assert.NotEqual(STATE_DONE, w.State)
	}
}

func TestWriterLogging(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	records := []vector.Record{
		makeRecord("ADD", "0", ints(1), ints(1), ints(1), ints(0), ints(0), ints(0), ints(0)),
		makeRecord("BAD", "0", ints(1), ints(), ints(1), ints(0), ints(0), ints(0), ints(0)),
	}

	w, err := NewWriter(tinyConfig(), records, &bytes.Buffer{})
	assert.NoError(err)
	assert.NoError(w.Run())

	assert.Equal(1, logs.FilterMessage("operation written").Len())

	skipped := logs.FilterMessage("operation skipped").All()
	if assert.Len(skipped, 1) {
		assert.Equal(zapcore.WarnLevel, skipped[0].Level)
		assert.Equal("BAD", skipped[0].ContextMap()["operation"])
	}

	summary := logs.FilterMessage("test vectors written").All()
	if assert.Len(summary, 1) {
		assert.Equal(int64(1), summary[0].ContextMap()["failed"])
		assert.Equal(int64(1), summary[0].ContextMap()["rows"])
	}
}
